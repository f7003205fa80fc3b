package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"internal-tools-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrToolNotFound   = errors.New("tool not found")
	ErrToolNameExists = errors.New("tool name already exists")
)

// toolRepository implements ToolRepositoryInterface
type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository
func NewToolRepository(db *gorm.DB) ToolRepositoryInterface {
	return &toolRepository{
		db: db,
	}
}

// Create inserts a tool and reloads it with its category
func (r *toolRepository) Create(ctx context.Context, tool *models.Tool) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(tool).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrToolNameExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to create tool: %w", err)
	}
	return r.loadCategory(ctx, tool)
}

// GetByID retrieves a tool by ID
func (r *toolRepository) GetByID(ctx context.Context, id int64) (*models.Tool, error) {
	var tool models.Tool
	if err := r.db.WithContext(ctx).Preload("Category").First(&tool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return &tool, nil
}

// GetAllWithFilters retrieves tools with filters and pagination, ordered by
// id. The count is taken over all matches before paging.
func (r *toolRepository) GetAllWithFilters(ctx context.Context, filters models.ToolFilters, offset, limit int) ([]models.Tool, int64, error) {
	var tools []models.Tool
	var total int64

	if err := applyToolFilters(r.db.WithContext(ctx).Model(&models.Tool{}), filters).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered tools: %w", err)
	}

	if err := applyToolFilters(r.db.WithContext(ctx), filters).Preload("Category").
		Offset(offset).Limit(limit).Order("id ASC").Find(&tools).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered tools: %w", err)
	}

	return tools, total, nil
}

// FindByStatus returns every tool in the given status
func (r *toolRepository) FindByStatus(ctx context.Context, status models.ToolStatus) ([]models.Tool, error) {
	var tools []models.Tool
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("status = ?", status).Order("id ASC").Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("failed to get tools by status: %w", err)
	}
	return tools, nil
}

// FindLowUsage returns active tools with at most maxUsers active users
func (r *toolRepository) FindLowUsage(ctx context.Context, maxUsers int) ([]models.Tool, error) {
	var tools []models.Tool
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("status = ? AND active_users_count <= ?", models.ToolStatusActive, maxUsers).
		Order("id ASC").Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("failed to get low usage tools: %w", err)
	}
	return tools, nil
}

// Update saves all columns of the tool and reloads its category
func (r *toolRepository) Update(ctx context.Context, tool *models.Tool) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(tool)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrToolNameExists
		}
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update tool: %w", result.Error)
	}
	return r.loadCategory(ctx, tool)
}

// Delete removes a tool permanently
func (r *toolRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Tool{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tool: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrToolNotFound
	}
	return nil
}

// ExistsByName reports whether another tool already uses name. Pass 0 as
// excludeID when creating.
func (r *toolRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Tool{}).Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tool name: %w", err)
	}
	return count > 0, nil
}

// CountByStatus returns the number of tools per status
func (r *toolRepository) CountByStatus(ctx context.Context) (map[models.ToolStatus]int64, error) {
	var rows []struct {
		Status models.ToolStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.Tool{}).
		Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tools by status: %w", err)
	}

	counts := make(map[models.ToolStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *toolRepository) loadCategory(ctx context.Context, tool *models.Tool) error {
	tool.Category = models.Category{}
	if err := r.db.WithContext(ctx).First(&tool.Category, tool.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to load tool category: %w", err)
	}
	return nil
}

func applyToolFilters(query *gorm.DB, filters models.ToolFilters) *gorm.DB {
	if filters.Department != "" {
		query = query.Where("owner_department = ?", filters.Department)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Vendor != "" {
		query = query.Where("LOWER(vendor) LIKE ?", likePattern(filters.Vendor))
	}
	if filters.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(filters.Search))
	}
	if filters.MinCost != nil {
		query = query.Where("monthly_cost >= ?", *filters.MinCost)
	}
	if filters.MaxCost != nil {
		query = query.Where("monthly_cost <= ?", *filters.MaxCost)
	}

	return query
}

func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
