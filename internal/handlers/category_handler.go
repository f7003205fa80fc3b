package handlers

import (
	"net/http"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
	"internal-tools-api/internal/services"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns every category ordered by name
//
// Method: GET /api/categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return c.JSON(http.StatusOK, dto.CategoryListResponse{Data: categories})
}
