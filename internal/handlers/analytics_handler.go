package handlers

import (
	"net/http"

	"internal-tools-api/internal/dto"
	apierrors "internal-tools-api/internal/errors"
	"internal-tools-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the cost analytics reports
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// DepartmentCosts returns active tool spend grouped by owner department
//
// Method: GET /api/analytics/department-costs
//
// Query parameters:
//   - sort_by: total_cost | department (default department)
//   - order: asc | desc (default desc)
func (h *AnalyticsHandler) DepartmentCosts(c echo.Context) error {
	query := dto.NewDepartmentCostsQuery()
	err := echo.QueryParamsBinder(c).
		String("sort_by", &query.SortBy).
		String("order", &query.Order).
		BindError()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(bindingErrorDetail(err)))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	report, err := h.analyticsService.DepartmentCosts(c.Request().Context(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExpensiveTools returns the most expensive active tools with an efficiency rating
//
// Method: GET /api/analytics/expensive-tools
//
// Query parameters:
//   - limit: 1..100 (default 10)
//   - min_cost: minimum total monthly cost, >= 0 (optional)
func (h *AnalyticsHandler) ExpensiveTools(c echo.Context) error {
	query := dto.NewExpensiveToolsQuery()
	err := echo.QueryParamsBinder(c).
		Int("limit", &query.Limit).
		CustomFunc("min_cost", decimalQuery("min_cost", &query.MinCost)).
		BindError()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(bindingErrorDetail(err)))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	report, err := h.analyticsService.ExpensiveTools(c.Request().Context(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// ToolsByCategory returns active tool spend grouped by category
//
// Method: GET /api/analytics/tools-by-category
func (h *AnalyticsHandler) ToolsByCategory(c echo.Context) error {
	report, err := h.analyticsService.ToolsByCategory(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// LowUsageTools returns underutilized active tools and the potential savings
//
// Method: GET /api/analytics/low-usage-tools
//
// Query parameters:
//   - max_users: users threshold, >= 0 (default 5)
func (h *AnalyticsHandler) LowUsageTools(c echo.Context) error {
	query := dto.NewLowUsageQuery()
	err := echo.QueryParamsBinder(c).
		Int("max_users", &query.MaxUsers).
		BindError()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(bindingErrorDetail(err)))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	report, err := h.analyticsService.LowUsageTools(c.Request().Context(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// VendorSummary returns active tool spend grouped by vendor
//
// Method: GET /api/analytics/vendor-summary
func (h *AnalyticsHandler) VendorSummary(c echo.Context) error {
	report, err := h.analyticsService.VendorSummary(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
