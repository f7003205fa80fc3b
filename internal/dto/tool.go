package dto

import (
	"time"

	"internal-tools-api/internal/models"
	"internal-tools-api/internal/money"

	"github.com/shopspring/decimal"
)

const (
	DefaultToolListLimit = 100
	MaxToolListLimit     = 500
)

// CreateToolRequest represents the request payload for creating a tool
type CreateToolRequest struct {
	Name             string             `json:"name" validate:"required,min=2,max=100"`
	Description      *string            `json:"description" validate:"omitempty,max=2000"`
	Vendor           string             `json:"vendor" validate:"required,max=100"`
	WebsiteURL       *string            `json:"website_url" validate:"omitempty,max=255,http_url"`
	CategoryID       int64              `json:"category_id" validate:"required,gt=0"`
	MonthlyCost      *decimal.Decimal   `json:"monthly_cost" validate:"required,money"`
	ActiveUsersCount *int               `json:"active_users_count" validate:"omitempty,min=0"`
	OwnerDepartment  models.Department  `json:"owner_department" validate:"required,department"`
	Status           *models.ToolStatus `json:"status" validate:"omitempty,tool_status"`
}

// UpdateToolRequest represents a partial update; nil fields are left unchanged
type UpdateToolRequest struct {
	Name             *string            `json:"name" validate:"omitempty,min=2,max=100"`
	Description      *string            `json:"description" validate:"omitempty,max=2000"`
	Vendor           *string            `json:"vendor" validate:"omitempty,min=1,max=100"`
	WebsiteURL       *string            `json:"website_url" validate:"omitempty,max=255,http_url"`
	CategoryID       *int64             `json:"category_id" validate:"omitempty,gt=0"`
	MonthlyCost      *decimal.Decimal   `json:"monthly_cost" validate:"omitempty,money"`
	ActiveUsersCount *int               `json:"active_users_count" validate:"omitempty,min=0"`
	OwnerDepartment  *models.Department `json:"owner_department" validate:"omitempty,department"`
	Status           *models.ToolStatus `json:"status" validate:"omitempty,tool_status"`
}

// IsEmpty reports whether the request changes nothing
func (r *UpdateToolRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Vendor == nil && r.WebsiteURL == nil &&
		r.CategoryID == nil && r.MonthlyCost == nil && r.ActiveUsersCount == nil &&
		r.OwnerDepartment == nil && r.Status == nil
}

// ToolListQuery holds the filters and paging of GET /api/tools
type ToolListQuery struct {
	Department string           `query:"department" validate:"omitempty,department"`
	Status     string           `query:"status" validate:"omitempty,tool_status"`
	CategoryID *int64           `query:"category_id" validate:"omitempty,gt=0"`
	Vendor     string           `query:"vendor" validate:"omitempty,max=100"`
	Search     string           `query:"search" validate:"omitempty,max=100"`
	MinCost    *decimal.Decimal `query:"min_cost" validate:"omitempty,non_negative"`
	MaxCost    *decimal.Decimal `query:"max_cost" validate:"omitempty,non_negative"`
	Skip       int              `query:"skip" validate:"min=0"`
	Limit      int              `query:"limit" validate:"min=1,max=500"`
}

func NewToolListQuery() ToolListQuery {
	return ToolListQuery{Limit: DefaultToolListLimit}
}

// Filters converts the query into repository filters
func (q ToolListQuery) Filters() models.ToolFilters {
	return models.ToolFilters{
		Department: models.Department(q.Department),
		Status:     models.ToolStatus(q.Status),
		CategoryID: q.CategoryID,
		Vendor:     q.Vendor,
		Search:     q.Search,
		MinCost:    q.MinCost,
		MaxCost:    q.MaxCost,
	}
}

// ToolResponse represents a single tool in API responses
type ToolResponse struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Description      *string           `json:"description"`
	Vendor           string            `json:"vendor"`
	WebsiteURL       *string           `json:"website_url"`
	CategoryID       int64             `json:"category_id"`
	Category         string            `json:"category"`
	MonthlyCost      money.Amount      `json:"monthly_cost"`
	TotalMonthlyCost money.Amount      `json:"total_monthly_cost"`
	OwnerDepartment  models.Department `json:"owner_department"`
	Status           models.ToolStatus `json:"status"`
	ActiveUsersCount int               `json:"active_users_count"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func NewToolResponse(tool *models.Tool) ToolResponse {
	return ToolResponse{
		ID:               tool.ID,
		Name:             tool.Name,
		Description:      tool.Description,
		Vendor:           tool.Vendor,
		WebsiteURL:       tool.WebsiteURL,
		CategoryID:       tool.CategoryID,
		Category:         tool.CategoryName(),
		MonthlyCost:      money.NewAmount(tool.MonthlyCost),
		TotalMonthlyCost: money.NewAmount(tool.TotalCost()),
		OwnerDepartment:  tool.OwnerDepartment,
		Status:           tool.Status,
		ActiveUsersCount: tool.ActiveUsersCount,
		CreatedAt:        tool.CreatedAt,
		UpdatedAt:        tool.UpdatedAt,
	}
}

// ToolListResponse represents a page of tools. Total counts every match,
// Filtered the rows in this page.
type ToolListResponse struct {
	Data           []ToolResponse         `json:"data"`
	Total          int64                  `json:"total"`
	Filtered       int                    `json:"filtered"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
}

func NewToolListResponse(tools []models.Tool, total int64, filters models.ToolFilters) ToolListResponse {
	data := make([]ToolResponse, 0, len(tools))
	for i := range tools {
		data = append(data, NewToolResponse(&tools[i]))
	}
	return ToolListResponse{
		Data:           data,
		Total:          total,
		Filtered:       len(data),
		FiltersApplied: filters.Applied(),
	}
}
