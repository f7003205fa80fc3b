package handlers

import (
	"errors"
	"net/http"

	apierrors "internal-tools-api/internal/errors"
	"internal-tools-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultGeneratedTools = 25
	maxGeneratedTools     = 500
)

// DevHandler handles development-only endpoints
// These endpoints are only mounted in development environments
type DevHandler struct {
	toolService     services.ToolServiceInterface
	categoryService services.CategoryServiceInterface
	generator       services.ToolGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	toolService services.ToolServiceInterface,
	categoryService services.CategoryServiceInterface,
	generator services.ToolGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		toolService:     toolService,
		categoryService: categoryService,
		generator:       generator,
	}
}

// GenerateTools fills the catalog with sample tools
//
// Method: POST /api/dev/tools/generate
// Environment: Development only
//
// Query parameters:
//   - count: Number of tools to generate (default: 25, max: 500)
//
// Success Response: 200 OK
//   - message: Success message
//   - tools_created: Number of tools created
//   - tools_skipped: Number of generated names already taken
func (h *DevHandler) GenerateTools(c echo.Context) error {
	count := defaultGeneratedTools
	if err := echo.QueryParamsBinder(c).Int("count", &count).BindError(); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(bindingErrorDetail(err)))
	}
	if count < 1 {
		count = 1
	}
	if count > maxGeneratedTools {
		count = maxGeneratedTools
	}

	ctx := c.Request().Context()
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		return handleServiceError(c, err)
	}
	if len(categories) == 0 {
		return SendError(c, apierrors.CategoryNotFound, apierrors.WithDetails("seed categories before generating tools"))
	}

	created, skipped := 0, 0
	for _, req := range h.generator.GenerateTools(categories, count) {
		req := req
		if _, err := h.toolService.CreateTool(ctx, &req); err != nil {
			if errors.Is(err, services.ErrToolNameTaken) {
				skipped++
				continue
			}
			return handleServiceError(c, err)
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "test data generated successfully",
		"tools_created": created,
		"tools_skipped": skipped,
	})
}
