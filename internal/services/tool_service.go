package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
	"internal-tools-api/internal/repositories"
)

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrToolNameTaken    = errors.New("a tool with this name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided", ErrInvalidParameter)

	modelValidationErrors = []error{
		models.ErrInvalidToolName,
		models.ErrInvalidVendor,
		models.ErrInvalidMonthlyCost,
		models.ErrInvalidUsersCount,
		models.ErrInvalidDepartment,
		models.ErrInvalidToolStatus,
		models.ErrCategoryRequired,
	}
)

type toolService struct {
	toolRepo     repositories.ToolRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewToolService(
	toolRepo repositories.ToolRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ToolServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &toolService{
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger.With("component", "tools"),
	}
}

func (s *toolService) ListTools(ctx context.Context, filters models.ToolFilters, offset, limit int) ([]models.Tool, int64, error) {
	tools, total, err := s.toolRepo.GetAllWithFilters(ctx, filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, total, nil
}

func (s *toolService) GetTool(ctx context.Context, id int64) (*models.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrToolNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return tool, nil
}

// CreateTool adds a tool. Status defaults to active and the user count to 0.
func (s *toolService) CreateTool(ctx context.Context, req *dto.CreateToolRequest) (*models.Tool, error) {
	name := strings.TrimSpace(req.Name)

	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(ctx, name, 0); err != nil {
		return nil, err
	}

	tool := &models.Tool{
		Name:            name,
		Description:     req.Description,
		Vendor:          strings.TrimSpace(req.Vendor),
		WebsiteURL:      req.WebsiteURL,
		CategoryID:      req.CategoryID,
		OwnerDepartment: req.OwnerDepartment,
		Status:          models.ToolStatusActive,
	}
	if req.MonthlyCost != nil {
		tool.MonthlyCost = *req.MonthlyCost
	}
	if req.ActiveUsersCount != nil {
		tool.ActiveUsersCount = *req.ActiveUsersCount
	}
	if req.Status != nil {
		tool.Status = *req.Status
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, s.mapWriteError("create", err)
	}

	s.logger.Info("tool created", "tool_id", tool.ID, "name", tool.Name, "department", tool.OwnerDepartment)
	s.recordMutation(ctx, "create")
	return tool, nil
}

// UpdateTool applies the non-nil fields of req to the tool
func (s *toolService) UpdateTool(ctx context.Context, id int64, req *dto.UpdateToolRequest) (*models.Tool, error) {
	if req.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	tool, err := s.GetTool(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != tool.Name {
			if err := s.ensureNameAvailable(ctx, name, tool.ID); err != nil {
				return nil, err
			}
		}
		tool.Name = name
	}
	if req.CategoryID != nil && *req.CategoryID != tool.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		tool.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		tool.Description = req.Description
	}
	if req.Vendor != nil {
		tool.Vendor = strings.TrimSpace(*req.Vendor)
	}
	if req.WebsiteURL != nil {
		tool.WebsiteURL = req.WebsiteURL
	}
	if req.MonthlyCost != nil {
		tool.MonthlyCost = *req.MonthlyCost
	}
	if req.ActiveUsersCount != nil {
		tool.ActiveUsersCount = *req.ActiveUsersCount
	}
	if req.OwnerDepartment != nil {
		tool.OwnerDepartment = *req.OwnerDepartment
	}
	if req.Status != nil {
		tool.Status = *req.Status
	}

	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, s.mapWriteError("update", err)
	}

	s.logger.Info("tool updated", "tool_id", tool.ID)
	s.recordMutation(ctx, "update")
	return tool, nil
}

func (s *toolService) DeleteTool(ctx context.Context, id int64) error {
	if err := s.toolRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrToolNotFound) {
			return ErrToolNotFound
		}
		return fmt.Errorf("failed to delete tool: %w", err)
	}

	s.logger.Info("tool deleted", "tool_id", id)
	s.recordMutation(ctx, "delete")
	return nil
}

func (s *toolService) ensureCategory(ctx context.Context, categoryID int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	return nil
}

func (s *toolService) ensureNameAvailable(ctx context.Context, name string, excludeID int64) error {
	exists, err := s.toolRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check tool name: %w", err)
	}
	if exists {
		return ErrToolNameTaken
	}
	return nil
}

func (s *toolService) mapWriteError(operation string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrToolNameExists):
		return ErrToolNameTaken
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repositories.ErrToolNotFound):
		return ErrToolNotFound
	}
	for _, validationErr := range modelValidationErrors {
		if errors.Is(err, validationErr) {
			return fmt.Errorf("%w: %s", ErrInvalidParameter, validationErr.Error())
		}
	}
	return fmt.Errorf("failed to %s tool: %w", operation, err)
}

// recordMutation counts the change and refreshes the per-status tool gauge
func (s *toolService) recordMutation(ctx context.Context, operation string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("tool.mutation", map[string]string{"operation": operation})

	counts, err := s.toolRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh tool gauges", "error", err)
		return
	}
	for _, status := range models.AllToolStatuses() {
		s.metrics.RecordGauge("tools", float64(counts[status]), map[string]string{"status": string(status)})
	}
}
