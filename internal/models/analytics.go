package models

import "internal-tools-api/internal/money"

// Report row and summary types for the /api/analytics endpoints. Monetary
// fields use money.Amount and percentages use money.Percent so every
// response carries fixed scales. Insight slots are pointers without
// omitempty so that an absent insight is rendered as null.

type DepartmentCost struct {
	Department         Department    `json:"department"`
	TotalCost          money.Amount  `json:"total_cost"`
	ToolsCount         int           `json:"tools_count"`
	TotalUsers         int           `json:"total_users"`
	AverageCostPerTool money.Amount  `json:"average_cost_per_tool"`
	CostPercentage     money.Percent `json:"cost_percentage"`
}

type DepartmentCostSummary struct {
	TotalCompanyCost        money.Amount `json:"total_company_cost"`
	DepartmentsCount        int          `json:"departments_count"`
	MostExpensiveDepartment *string      `json:"most_expensive_department"`
}

type DepartmentCostsReport struct {
	Data    []DepartmentCost      `json:"data"`
	Summary DepartmentCostSummary `json:"summary"`
}

type ExpensiveTool struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	MonthlyCost      money.Amount     `json:"monthly_cost"`
	ActiveUsersCount int              `json:"active_users_count"`
	CostPerUser      money.Amount     `json:"cost_per_user"`
	Department       Department       `json:"department"`
	Vendor           string           `json:"vendor"`
	EfficiencyRating EfficiencyRating `json:"efficiency_rating"`
}

type ExpensiveToolsAnalysis struct {
	TotalToolsAnalyzed         int          `json:"total_tools_analyzed"`
	AvgCostPerUserCompany      money.Amount `json:"avg_cost_per_user_company"`
	PotentialSavingsIdentified money.Amount `json:"potential_savings_identified"`
}

type ExpensiveToolsReport struct {
	Data     []ExpensiveTool        `json:"data"`
	Analysis ExpensiveToolsAnalysis `json:"analysis"`
}

type CategoryCost struct {
	CategoryName       string        `json:"category_name"`
	ToolsCount         int           `json:"tools_count"`
	TotalCost          money.Amount  `json:"total_cost"`
	TotalUsers         int           `json:"total_users"`
	PercentageOfBudget money.Percent `json:"percentage_of_budget"`
	AverageCostPerUser money.Amount  `json:"average_cost_per_user"`
}

type CategoryInsights struct {
	MostExpensiveCategory *string `json:"most_expensive_category"`
	MostEfficientCategory *string `json:"most_efficient_category"`
}

type CategoryCostsReport struct {
	Data     []CategoryCost   `json:"data"`
	Insights CategoryInsights `json:"insights"`
}

type LowUsageTool struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	MonthlyCost      money.Amount `json:"monthly_cost"`
	ActiveUsersCount int          `json:"active_users_count"`
	CostPerUser      money.Amount `json:"cost_per_user"`
	Department       Department   `json:"department"`
	Vendor           string       `json:"vendor"`
	WarningLevel     WarningLevel `json:"warning_level"`
	PotentialAction  string       `json:"potential_action"`
}

type SavingsAnalysis struct {
	TotalUnderutilizedTools int          `json:"total_underutilized_tools"`
	PotentialMonthlySavings money.Amount `json:"potential_monthly_savings"`
	PotentialAnnualSavings  money.Amount `json:"potential_annual_savings"`
}

type LowUsageReport struct {
	Data            []LowUsageTool  `json:"data"`
	SavingsAnalysis SavingsAnalysis `json:"savings_analysis"`
}

type VendorSummary struct {
	Vendor             string           `json:"vendor"`
	ToolsCount         int              `json:"tools_count"`
	TotalMonthlyCost   money.Amount     `json:"total_monthly_cost"`
	TotalUsers         int              `json:"total_users"`
	Departments        string           `json:"departments"`
	AverageCostPerUser money.Amount     `json:"average_cost_per_user"`
	VendorEfficiency   VendorEfficiency `json:"vendor_efficiency"`
}

type VendorInsights struct {
	MostExpensiveVendor *string `json:"most_expensive_vendor"`
	MostEfficientVendor *string `json:"most_efficient_vendor"`
	SingleToolVendors   int     `json:"single_tool_vendors"`
}

type VendorSummaryReport struct {
	Data           []VendorSummary `json:"data"`
	VendorInsights VendorInsights  `json:"vendor_insights"`
}
