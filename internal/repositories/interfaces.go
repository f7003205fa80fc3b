package repositories

import (
	"context"

	"internal-tools-api/internal/models"
)

// ToolRepositoryInterface defines the contract for tool repository operations.
// Every read preloads the tool's category.
type ToolRepositoryInterface interface {
	Create(ctx context.Context, tool *models.Tool) error
	GetByID(ctx context.Context, id int64) (*models.Tool, error)
	GetAllWithFilters(ctx context.Context, filters models.ToolFilters, offset, limit int) ([]models.Tool, int64, error)
	FindByStatus(ctx context.Context, status models.ToolStatus) ([]models.Tool, error)
	FindLowUsage(ctx context.Context, maxUsers int) ([]models.Tool, error)
	Update(ctx context.Context, tool *models.Tool) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	CountByStatus(ctx context.Context) (map[models.ToolStatus]int64, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
}
