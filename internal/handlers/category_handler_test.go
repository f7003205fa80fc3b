package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"internal-tools-api/internal/models"
	"internal-tools-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	categoryService := service_mocks.NewMockCategoryServiceInterface(ctrl)
	handler := NewCategoryHandler(categoryService)

	categoryService.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{
		{ID: 1, Name: "Analytics", ColorHex: "#8b5cf6"},
	}, nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/categories", nil), rec)

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Analytics"`)
	assert.Contains(t, rec.Body.String(), `"color_hex":"#8b5cf6"`)
}

func TestListCategories_EmptyIsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	categoryService := service_mocks.NewMockCategoryServiceInterface(ctrl)
	handler := NewCategoryHandler(categoryService)

	categoryService.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/categories", nil), rec)

	require.NoError(t, handler.ListCategories(c))
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListCategories_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	categoryService := service_mocks.NewMockCategoryServiceInterface(ctrl)
	handler := NewCategoryHandler(categoryService)

	categoryService.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("failed to list categories: timeout"))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/categories", nil), rec)

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_002")
}
