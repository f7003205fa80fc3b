package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func serveLogged(t *testing.T, handler echo.HandlerFunc) (map[string]interface{}, *httptest.ResponseRecorder) {
	t.Helper()

	logger, buf := newBufferLogger()

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Use(RequestID(), RequestLogger(logger))
	e.GET("/api/tools/:id", handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tools/7", nil)
	req.Header.Set(TraceIDHeader, "trace-log-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry, rec
}

func TestRequestLogger_Success(t *testing.T) {
	entry, rec := serveLogged(t, func(c echo.Context) error {
		return c.String(http.StatusOK, "tool")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "trace-log-1", entry["trace_id"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/api/tools/7", entry["path"])
	assert.Equal(t, "/api/tools/:id", entry["route"])
	assert.EqualValues(t, 200, entry["status"])
	assert.EqualValues(t, 4, entry["bytes_out"])
}

func TestRequestLogger_ClientErrorIsWarn(t *testing.T) {
	entry, rec := serveLogged(t, func(c echo.Context) error {
		return echo.ErrNotFound
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 404, entry["status"])
}

func TestRequestLogger_ServerErrorIsError(t *testing.T) {
	entry, rec := serveLogged(t, func(c echo.Context) error {
		return errors.New("database is gone")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "ERROR", entry["level"])
	assert.EqualValues(t, 500, entry["status"])
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
}
