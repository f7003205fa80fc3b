package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
)

var ErrInvalidParameter = errors.New("invalid parameter")

const (
	ReportDepartmentCosts = "department_costs"
	ReportExpensiveTools  = "expensive_tools"
	ReportToolsByCategory = "tools_by_category"
	ReportLowUsageTools   = "low_usage_tools"
	ReportVendorSummary   = "vendor_summary"

	maxExpensiveToolsLimit = 100
)

type analyticsService struct {
	loader  SnapshotLoaderInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewAnalyticsService(loader SnapshotLoaderInterface, metrics MetricsRecorderInterface, logger *slog.Logger) AnalyticsServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &analyticsService{
		loader:  loader,
		metrics: metrics,
		logger:  logger.With("component", "analytics"),
	}
}

func (s *analyticsService) DepartmentCosts(ctx context.Context, query dto.DepartmentCostsQuery) (*models.DepartmentCostsReport, error) {
	if query.SortBy == "" {
		query.SortBy = dto.SortByDepartment
	}
	if query.Order == "" {
		query.Order = dto.OrderDesc
	}
	if query.SortBy != dto.SortByTotalCost && query.SortBy != dto.SortByDepartment {
		return nil, fmt.Errorf("%w: sort_by must be one of total_cost, department", ErrInvalidParameter)
	}
	if query.Order != dto.OrderAsc && query.Order != dto.OrderDesc {
		return nil, fmt.Errorf("%w: order must be one of asc, desc", ErrInvalidParameter)
	}

	start := time.Now()
	tools, err := s.activeTools(ctx, ReportDepartmentCosts)
	if err != nil {
		return nil, err
	}

	report := buildDepartmentCosts(tools, query)
	s.recordReport(ReportDepartmentCosts, start, len(report.Data))
	if s.metrics != nil {
		total, _ := report.Summary.TotalCompanyCost.Decimal().Float64()
		s.metrics.RecordGauge("company_monthly_cost", total, nil)
	}
	return report, nil
}

func (s *analyticsService) ExpensiveTools(ctx context.Context, query dto.ExpensiveToolsQuery) (*models.ExpensiveToolsReport, error) {
	if query.Limit < 1 || query.Limit > maxExpensiveToolsLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParameter, maxExpensiveToolsLimit)
	}
	if query.MinCost != nil && query.MinCost.IsNegative() {
		return nil, fmt.Errorf("%w: min_cost must be a non-negative number", ErrInvalidParameter)
	}

	start := time.Now()
	tools, err := s.activeTools(ctx, ReportExpensiveTools)
	if err != nil {
		return nil, err
	}

	report := buildExpensiveTools(tools, query)
	s.recordReport(ReportExpensiveTools, start, len(report.Data))
	return report, nil
}

func (s *analyticsService) ToolsByCategory(ctx context.Context) (*models.CategoryCostsReport, error) {
	start := time.Now()
	tools, err := s.activeTools(ctx, ReportToolsByCategory)
	if err != nil {
		return nil, err
	}

	report := buildToolsByCategory(tools)
	s.recordReport(ReportToolsByCategory, start, len(report.Data))
	return report, nil
}

func (s *analyticsService) LowUsageTools(ctx context.Context, query dto.LowUsageQuery) (*models.LowUsageReport, error) {
	if query.MaxUsers < 0 {
		return nil, fmt.Errorf("%w: max_users must be a non-negative integer", ErrInvalidParameter)
	}

	start := time.Now()
	tools, err := s.loader.LowUsageTools(ctx, query.MaxUsers)
	if err != nil {
		s.recordFailure(ReportLowUsageTools, err)
		return nil, fmt.Errorf("failed to load low usage tools: %w", err)
	}

	report := buildLowUsage(tools, query)
	s.recordReport(ReportLowUsageTools, start, len(report.Data))
	return report, nil
}

func (s *analyticsService) VendorSummary(ctx context.Context) (*models.VendorSummaryReport, error) {
	start := time.Now()
	tools, err := s.activeTools(ctx, ReportVendorSummary)
	if err != nil {
		return nil, err
	}

	report := buildVendorSummary(tools)
	s.recordReport(ReportVendorSummary, start, len(report.Data))
	return report, nil
}

func (s *analyticsService) activeTools(ctx context.Context, report string) ([]models.Tool, error) {
	tools, err := s.loader.ActiveTools(ctx)
	if err != nil {
		s.recordFailure(report, err)
		return nil, fmt.Errorf("failed to load active tools: %w", err)
	}
	return tools, nil
}

func (s *analyticsService) recordReport(report string, start time.Time, rows int) {
	duration := time.Since(start)
	s.logger.Debug("report generated",
		"report", report,
		"rows", rows,
		"duration_ms", duration.Milliseconds(),
	)

	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("analytics.report", map[string]string{"report": report, "status": "success"})
	s.metrics.RecordProcessingTime("analytics."+report, duration)
	s.metrics.RecordGauge("analytics.rows", float64(rows), map[string]string{"report": report})
}

func (s *analyticsService) recordFailure(report string, err error) {
	s.logger.Error("failed to load snapshot", "report", report, "error", err)

	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("analytics.report", map[string]string{"report": report, "status": "failed"})
}
