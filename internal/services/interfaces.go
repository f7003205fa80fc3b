package services

import (
	"context"
	"time"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
)

// SnapshotLoaderInterface reads the tools a single report is computed from
type SnapshotLoaderInterface interface {
	ActiveTools(ctx context.Context) ([]models.Tool, error)
	LowUsageTools(ctx context.Context, maxUsers int) ([]models.Tool, error)
}

// AnalyticsServiceInterface builds the cost analytics reports. Every report
// covers active tools only and validates its parameters before reading.
type AnalyticsServiceInterface interface {
	DepartmentCosts(ctx context.Context, query dto.DepartmentCostsQuery) (*models.DepartmentCostsReport, error)
	ExpensiveTools(ctx context.Context, query dto.ExpensiveToolsQuery) (*models.ExpensiveToolsReport, error)
	ToolsByCategory(ctx context.Context) (*models.CategoryCostsReport, error)
	LowUsageTools(ctx context.Context, query dto.LowUsageQuery) (*models.LowUsageReport, error)
	VendorSummary(ctx context.Context) (*models.VendorSummaryReport, error)
}

// ToolServiceInterface defines the tool catalog operations
type ToolServiceInterface interface {
	ListTools(ctx context.Context, filters models.ToolFilters, offset, limit int) ([]models.Tool, int64, error)
	GetTool(ctx context.Context, id int64) (*models.Tool, error)
	CreateTool(ctx context.Context, req *dto.CreateToolRequest) (*models.Tool, error)
	UpdateTool(ctx context.Context, id int64, req *dto.UpdateToolRequest) (*models.Tool, error)
	DeleteTool(ctx context.Context, id int64) error
}

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// ToolGeneratorInterface produces sample catalog entries for development data
type ToolGeneratorInterface interface {
	GenerateTools(categories []models.Category, count int) []dto.CreateToolRequest
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
