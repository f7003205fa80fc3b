package handlers

import "github.com/labstack/echo/v4"

// Handlers groups every HTTP handler mounted by RegisterRoutes
type Handlers struct {
	Health     *HealthCheckHandler
	Tools      *ToolHandler
	Categories *CategoryHandler
	Analytics  *AnalyticsHandler

	// Dev is mounted only when set
	Dev *DevHandler
}

// RegisterRoutes mounts the API under /api
func RegisterRoutes(e *echo.Echo, h Handlers) {
	api := e.Group("/api")

	api.GET("/health", h.Health.HealthCheck)

	tools := api.Group("/tools")
	tools.GET("", h.Tools.ListTools)
	tools.POST("", h.Tools.CreateTool)
	tools.GET("/:id", h.Tools.GetTool)
	tools.PUT("/:id", h.Tools.UpdateTool)
	tools.DELETE("/:id", h.Tools.DeleteTool)

	api.GET("/categories", h.Categories.ListCategories)

	analytics := api.Group("/analytics")
	analytics.GET("/department-costs", h.Analytics.DepartmentCosts)
	analytics.GET("/expensive-tools", h.Analytics.ExpensiveTools)
	analytics.GET("/tools-by-category", h.Analytics.ToolsByCategory)
	analytics.GET("/low-usage-tools", h.Analytics.LowUsageTools)
	analytics.GET("/vendor-summary", h.Analytics.VendorSummary)

	if h.Dev != nil {
		api.POST("/dev/tools/generate", h.Dev.GenerateTools)
	}
}
