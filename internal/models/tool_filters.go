package models

import "github.com/shopspring/decimal"

// ToolFilters contains filter criteria for tool queries
type ToolFilters struct {
	Department Department
	Status     ToolStatus
	CategoryID *int64
	Vendor     string
	Search     string
	MinCost    *decimal.Decimal
	MaxCost    *decimal.Decimal
}

// Applied returns the filters that are set, keyed by their query parameter name.
func (f ToolFilters) Applied() map[string]interface{} {
	applied := make(map[string]interface{})
	if f.Department != "" {
		applied["department"] = f.Department
	}
	if f.Status != "" {
		applied["status"] = f.Status
	}
	if f.CategoryID != nil {
		applied["category_id"] = *f.CategoryID
	}
	if f.Vendor != "" {
		applied["vendor"] = f.Vendor
	}
	if f.Search != "" {
		applied["search"] = f.Search
	}
	if f.MinCost != nil {
		applied["min_cost"] = f.MinCost.StringFixed(2)
	}
	if f.MaxCost != nil {
		applied["max_cost"] = f.MaxCost.StringFixed(2)
	}
	return applied
}
