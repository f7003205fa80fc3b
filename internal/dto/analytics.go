package dto

import "github.com/shopspring/decimal"

// Sort keys and directions accepted by the department costs report
const (
	SortByTotalCost  = "total_cost"
	SortByDepartment = "department"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultExpensiveToolsLimit = 10
	DefaultLowUsageMaxUsers    = 5
)

// DepartmentCostsQuery holds the parameters of GET /api/analytics/department-costs
type DepartmentCostsQuery struct {
	SortBy string `query:"sort_by" validate:"oneof=total_cost department"`
	Order  string `query:"order" validate:"oneof=asc desc"`
}

func NewDepartmentCostsQuery() DepartmentCostsQuery {
	return DepartmentCostsQuery{SortBy: SortByDepartment, Order: OrderDesc}
}

// ExpensiveToolsQuery holds the parameters of GET /api/analytics/expensive-tools
type ExpensiveToolsQuery struct {
	Limit   int              `query:"limit" validate:"min=1,max=100"`
	MinCost *decimal.Decimal `query:"min_cost" validate:"omitempty,non_negative"`
}

func NewExpensiveToolsQuery() ExpensiveToolsQuery {
	return ExpensiveToolsQuery{Limit: DefaultExpensiveToolsLimit}
}

// LowUsageQuery holds the parameters of GET /api/analytics/low-usage-tools
type LowUsageQuery struct {
	MaxUsers int `query:"max_users" validate:"min=0"`
}

func NewLowUsageQuery() LowUsageQuery {
	return LowUsageQuery{MaxUsers: DefaultLowUsageMaxUsers}
}
