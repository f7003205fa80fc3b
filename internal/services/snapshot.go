package services

import (
	"context"

	"internal-tools-api/internal/models"
	"internal-tools-api/internal/repositories"
)

type snapshotLoader struct {
	toolRepo repositories.ToolRepositoryInterface
}

func NewSnapshotLoader(toolRepo repositories.ToolRepositoryInterface) SnapshotLoaderInterface {
	return &snapshotLoader{toolRepo: toolRepo}
}

// ActiveTools returns every active tool with its category loaded
func (l *snapshotLoader) ActiveTools(ctx context.Context) ([]models.Tool, error) {
	return l.toolRepo.FindByStatus(ctx, models.ToolStatusActive)
}

// LowUsageTools returns active tools with at most maxUsers users, filtered by the store
func (l *snapshotLoader) LowUsageTools(ctx context.Context, maxUsers int) ([]models.Tool, error) {
	return l.toolRepo.FindLowUsage(ctx, maxUsers)
}
