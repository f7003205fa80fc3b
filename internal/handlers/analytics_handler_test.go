package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
	"internal-tools-api/internal/money"
	"internal-tools-api/internal/services"
	"internal-tools-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	echo             *echo.Echo
	analyticsService *service_mocks.MockAnalyticsServiceInterface
	handler          *AnalyticsHandler
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.analyticsService = service_mocks.NewMockAnalyticsServiceInterface(s.ctrl)
	s.handler = NewAnalyticsHandler(s.analyticsService)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsHandlerTestSuite) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-analytics")
	return c, rec
}

func (s *AnalyticsHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var body ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *AnalyticsHandlerTestSuite) TestDepartmentCosts_Defaults() {
	c, rec := s.get("/api/analytics/department-costs")
	s.analyticsService.EXPECT().
		DepartmentCosts(gomock.Any(), dto.DepartmentCostsQuery{SortBy: dto.SortByDepartment, Order: dto.OrderDesc}).
		Return(&models.DepartmentCostsReport{Data: []models.DepartmentCost{}}, nil)

	s.Require().NoError(s.handler.DepartmentCosts(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[],"summary":{"total_company_cost":0.00,"departments_count":0,"most_expensive_department":null}}`, rec.Body.String())
}

func (s *AnalyticsHandlerTestSuite) TestDepartmentCosts_PassesSortParameters() {
	c, rec := s.get("/api/analytics/department-costs?sort_by=total_cost&order=asc")
	s.analyticsService.EXPECT().
		DepartmentCosts(gomock.Any(), dto.DepartmentCostsQuery{SortBy: dto.SortByTotalCost, Order: dto.OrderAsc}).
		Return(&models.DepartmentCostsReport{Data: []models.DepartmentCost{}}, nil)

	s.Require().NoError(s.handler.DepartmentCosts(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestDepartmentCosts_InvalidSortBy() {
	c, rec := s.get("/api/analytics/department-costs?sort_by=name")

	s.Require().NoError(s.handler.DepartmentCosts(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	body := s.decodeError(rec)
	s.Equal("VALIDATION_001", body.Code)
	s.Equal([]string{"sort_by: must be one of: total_cost department"}, body.Details)
	s.Equal("trace-analytics", body.TraceID)
}

func (s *AnalyticsHandlerTestSuite) TestExpensiveTools_ParsesParameters() {
	c, rec := s.get("/api/analytics/expensive-tools?limit=3&min_cost=99.5")
	s.analyticsService.EXPECT().
		ExpensiveTools(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query dto.ExpensiveToolsQuery) (*models.ExpensiveToolsReport, error) {
			s.Equal(3, query.Limit)
			s.Require().NotNil(query.MinCost)
			s.True(query.MinCost.Equal(decimal.RequireFromString("99.5")))
			return &models.ExpensiveToolsReport{Data: []models.ExpensiveTool{}}, nil
		})

	s.Require().NoError(s.handler.ExpensiveTools(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"analysis"`)
}

func (s *AnalyticsHandlerTestSuite) TestExpensiveTools_InvalidParameters() {
	testCases := []struct {
		name   string
		target string
		code   string
	}{
		{"limit zero", "/api/analytics/expensive-tools?limit=0", "VALIDATION_001"},
		{"limit too large", "/api/analytics/expensive-tools?limit=101", "VALIDATION_001"},
		{"limit not a number", "/api/analytics/expensive-tools?limit=ten", "VALIDATION_003"},
		{"negative min cost", "/api/analytics/expensive-tools?min_cost=-5", "VALIDATION_001"},
		{"min cost not a number", "/api/analytics/expensive-tools?min_cost=cheap", "VALIDATION_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.get(tc.target)

			s.Require().NoError(s.handler.ExpensiveTools(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tc.code, s.decodeError(rec).Code)
		})
	}
}

func (s *AnalyticsHandlerTestSuite) TestToolsByCategory() {
	c, rec := s.get("/api/analytics/tools-by-category")
	name := "CRM"
	s.analyticsService.EXPECT().ToolsByCategory(gomock.Any()).Return(&models.CategoryCostsReport{
		Data: []models.CategoryCost{{
			CategoryName:       "CRM",
			ToolsCount:         1,
			TotalCost:          money.AmountFromString("250"),
			TotalUsers:         5,
			PercentageOfBudget: money.NewPercent(decimal.NewFromInt(100)),
			AverageCostPerUser: money.AmountFromString("50"),
		}},
		Insights: models.CategoryInsights{MostExpensiveCategory: &name},
	}, nil)

	s.Require().NoError(s.handler.ToolsByCategory(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{
		"data":[{"category_name":"CRM","tools_count":1,"total_cost":250.00,"total_users":5,
			"percentage_of_budget":100.0,"average_cost_per_user":50.00}],
		"insights":{"most_expensive_category":"CRM","most_efficient_category":null}
	}`, rec.Body.String())
	s.Contains(rec.Body.String(), `"total_cost":250.00`)
}

func (s *AnalyticsHandlerTestSuite) TestLowUsageTools_DefaultThreshold() {
	c, rec := s.get("/api/analytics/low-usage-tools")
	s.analyticsService.EXPECT().
		LowUsageTools(gomock.Any(), dto.LowUsageQuery{MaxUsers: 5}).
		Return(&models.LowUsageReport{Data: []models.LowUsageTool{}}, nil)

	s.Require().NoError(s.handler.LowUsageTools(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"savings_analysis"`)
}

func (s *AnalyticsHandlerTestSuite) TestLowUsageTools_NegativeThreshold() {
	c, rec := s.get("/api/analytics/low-usage-tools?max_users=-1")

	s.Require().NoError(s.handler.LowUsageTools(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal([]string{"max_users: must be at least 0"}, s.decodeError(rec).Details)
}

func (s *AnalyticsHandlerTestSuite) TestVendorSummary_StoreFailure() {
	c, rec := s.get("/api/analytics/vendor-summary")
	s.analyticsService.EXPECT().VendorSummary(gomock.Any()).Return(nil, errors.New("failed to load active tools: connection refused"))

	s.Require().NoError(s.handler.VendorSummary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	body := s.decodeError(rec)
	s.Equal("SYSTEM_002", body.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *AnalyticsHandlerTestSuite) TestServiceParameterError() {
	c, rec := s.get("/api/analytics/vendor-summary")
	s.analyticsService.EXPECT().VendorSummary(gomock.Any()).
		Return(nil, fmt.Errorf("%w: limit must be between 1 and 100", services.ErrInvalidParameter))

	s.Require().NoError(s.handler.VendorSummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal([]string{"limit must be between 1 and 100"}, s.decodeError(rec).Details)
}
