package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"internal-tools-api/internal/config"
	"internal-tools-api/internal/database"
	"internal-tools-api/internal/middleware"
	"internal-tools-api/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, Execute("1.2.0", "abc123", "2025-05-01"))
	assert.Equal(t, "toolsapi 1.2.0 (commit: abc123, built: 2025-05-01)\n", out.String())
}

func TestExecuteUnknownCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"launch"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestMigrateHasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range migrateCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, names)
	assert.NotNil(t, migrateUpCmd.Flags().Lookup("seed"))
}

type testServer struct {
	echo *echo.Echo
	db   *database.DB
}

func newTestServer(t *testing.T, environment string) *testServer {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Environment = environment
	cfg.Server.CORSAllowOrigins = []string{"*"}

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	registry := prometheus.NewRegistry()
	e := newServer(t.Context(), cfg, db.DB, registry, registry)
	return &testServer{echo: e, db: db}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthAndHeaders(t *testing.T) {
	srv := newTestServer(t, "testing")

	rec := srv.do(http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.TraceIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestServer_ToolLifecycleFeedsAnalytics(t *testing.T) {
	srv := newTestServer(t, "testing")
	category := database.CreateTestCategory(t, srv.db, "Communication")

	body := `{"name":"Slack","vendor":"Slack Technologies","category_id":` +
		jsonNumber(category.ID) +
		`,"monthly_cost":8.00,"owner_department":"Engineering","active_users_count":25}`
	rec := srv.do(http.MethodPost, "/api/tools", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(http.MethodGet, "/api/analytics/department-costs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.DepartmentCostsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Data, 1)
	assert.Equal(t, models.Department("Engineering"), report.Data[0].Department)
	assert.Equal(t, "200.00", report.Summary.TotalCompanyCost.String())

	rec = srv.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "analytics_reports_total")
	assert.Contains(t, rec.Body.String(), "tool_mutations_total")
}

func TestServer_ValidationThroughStack(t *testing.T) {
	srv := newTestServer(t, "testing")

	rec := srv.do(http.MethodGet, "/api/analytics/expensive-tools?limit=0", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_001")
}

func TestServer_DevRoutesOnlyInDevelopment(t *testing.T) {
	dev := newTestServer(t, "development")
	rec := dev.do(http.MethodPost, "/api/dev/tools/generate?count=3", "")
	// no categories seeded
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CATEGORY_001")

	prod := newTestServer(t, "production")
	rec = prod.do(http.MethodPost, "/api/dev/tools/generate?count=3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST_001")
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
