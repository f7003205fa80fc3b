package handlers

import (
	"net/http"

	"internal-tools-api/internal/dto"
	apierrors "internal-tools-api/internal/errors"
	"internal-tools-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ToolHandler handles the tool catalog endpoints
type ToolHandler struct {
	toolService services.ToolServiceInterface
}

func NewToolHandler(toolService services.ToolServiceInterface) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

// ListTools returns a filtered page of tools ordered by id
//
// Method: GET /api/tools
//
// Query parameters:
//   - department, status, category_id, vendor, search: filters
//   - min_cost, max_cost: bounds on monthly_cost
//   - skip: rows to skip (default 0)
//   - limit: page size 1..500 (default 100)
func (h *ToolHandler) ListTools(c echo.Context) error {
	query := dto.NewToolListQuery()
	err := echo.QueryParamsBinder(c).
		String("department", &query.Department).
		String("status", &query.Status).
		CustomFunc("category_id", int64Query("category_id", &query.CategoryID)).
		String("vendor", &query.Vendor).
		String("search", &query.Search).
		CustomFunc("min_cost", decimalQuery("min_cost", &query.MinCost)).
		CustomFunc("max_cost", decimalQuery("max_cost", &query.MaxCost)).
		Int("skip", &query.Skip).
		Int("limit", &query.Limit).
		BindError()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(bindingErrorDetail(err)))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	filters := query.Filters()
	tools, total, err := h.toolService.ListTools(c.Request().Context(), filters, query.Skip, query.Limit)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewToolListResponse(tools, total, filters))
}

// GetTool returns a single tool
//
// Method: GET /api/tools/:id
func (h *ToolHandler) GetTool(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ToolInvalidID)
	}

	tool, err := h.toolService.GetTool(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewToolResponse(tool))
}

// CreateTool adds a tool to the catalog
//
// Method: POST /api/tools
//
// Error Responses:
//   - 400: malformed body or invalid fields
//   - 404: category does not exist
//   - 409: name already used
func (h *ToolHandler) CreateTool(c echo.Context) error {
	var req dto.CreateToolRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationMalformedBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	tool, err := h.toolService.CreateTool(c.Request().Context(), &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewToolResponse(tool))
}

// UpdateTool applies a partial update; at least one field is required
//
// Method: PUT /api/tools/:id
func (h *ToolHandler) UpdateTool(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ToolInvalidID)
	}

	var req dto.UpdateToolRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationMalformedBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	tool, err := h.toolService.UpdateTool(c.Request().Context(), id, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewToolResponse(tool))
}

// DeleteTool removes a tool
//
// Method: DELETE /api/tools/:id
func (h *ToolHandler) DeleteTool(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ToolInvalidID)
	}

	if err := h.toolService.DeleteTool(c.Request().Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
