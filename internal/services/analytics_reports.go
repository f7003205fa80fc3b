package services

import (
	"sort"
	"strings"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
	"internal-tools-api/internal/money"

	"github.com/shopspring/decimal"
)

// The builders below are pure: they read the snapshot, never modify it and
// return rows in a deterministic order.

var monthsPerYear = decimal.NewFromInt(12)

func buildDepartmentCosts(tools []models.Tool, query dto.DepartmentCostsQuery) *models.DepartmentCostsReport {
	groups := groupBy(tools, func(t *models.Tool) string { return string(t.OwnerDepartment) })
	companyTotal := sumTotalCost(tools)

	rows := make([]models.DepartmentCost, 0, len(groups))
	for _, group := range groups {
		total := sumTotalCost(group.Tools)
		rows = append(rows, models.DepartmentCost{
			Department:         models.Department(group.Key),
			TotalCost:          money.NewAmount(total),
			ToolsCount:         len(group.Tools),
			TotalUsers:         sumUsers(group.Tools),
			AverageCostPerTool: money.NewAmount(money.DivByCount(total, len(group.Tools))),
			CostPercentage:     money.NewPercent(money.Percentage(total, companyTotal)),
		})
	}

	summary := models.DepartmentCostSummary{
		TotalCompanyCost: money.NewAmount(companyTotal),
		DepartmentsCount: len(rows),
	}
	// rows are still in name order here, so a tie goes to the first name
	if top, ok := firstMaxBy(rows, departmentTotal, nil); ok {
		summary.MostExpensiveDepartment = stringPtr(string(top.Department))
	}

	if query.SortBy == dto.SortByTotalCost {
		ascending := query.Order == dto.OrderAsc
		sort.SliceStable(rows, func(i, j int) bool {
			if ascending {
				return departmentTotal(rows[i]).LessThan(departmentTotal(rows[j]))
			}
			return departmentTotal(rows[i]).GreaterThan(departmentTotal(rows[j]))
		})
	}

	return &models.DepartmentCostsReport{Data: rows, Summary: summary}
}

func departmentTotal(row models.DepartmentCost) decimal.Decimal {
	return row.TotalCost.Decimal()
}

// companyAverageCostPerUser is Σ total / Σ users over tools that have users
func companyAverageCostPerUser(tools []models.Tool) (decimal.Decimal, int) {
	used := make([]models.Tool, 0, len(tools))
	for i := range tools {
		if tools[i].ActiveUsersCount > 0 {
			used = append(used, tools[i])
		}
	}
	return money.DivByCount(sumTotalCost(used), sumUsers(used)), len(used)
}

func buildExpensiveTools(tools []models.Tool, query dto.ExpensiveToolsQuery) *models.ExpensiveToolsReport {
	companyAvg, analyzed := companyAverageCostPerUser(tools)

	candidates := make([]models.Tool, 0, len(tools))
	for i := range tools {
		if query.MinCost != nil && tools[i].TotalCost().LessThan(*query.MinCost) {
			continue
		}
		candidates = append(candidates, tools[i])
	}

	sortByTotalCostDesc(candidates)
	if len(candidates) > query.Limit {
		candidates = candidates[:query.Limit]
	}

	rows := make([]models.ExpensiveTool, 0, len(candidates))
	savings := decimal.Zero
	for i := range candidates {
		tool := &candidates[i]
		total := tool.TotalCost()
		costPerUser := money.DivByCount(total, tool.ActiveUsersCount)
		rating := efficiencyRating(costPerUser, companyAvg)
		if rating == models.EfficiencyLow {
			savings = savings.Add(total)
		}

		rows = append(rows, models.ExpensiveTool{
			ID:               tool.ID,
			Name:             tool.Name,
			MonthlyCost:      money.NewAmount(tool.MonthlyCost),
			ActiveUsersCount: tool.ActiveUsersCount,
			CostPerUser:      money.NewAmount(costPerUser),
			Department:       tool.OwnerDepartment,
			Vendor:           tool.Vendor,
			EfficiencyRating: rating,
		})
	}

	return &models.ExpensiveToolsReport{
		Data: rows,
		Analysis: models.ExpensiveToolsAnalysis{
			TotalToolsAnalyzed:         analyzed,
			AvgCostPerUserCompany:      money.NewAmount(companyAvg),
			PotentialSavingsIdentified: money.NewAmount(savings),
		},
	}
}

func buildToolsByCategory(tools []models.Tool) *models.CategoryCostsReport {
	groups := groupBy(tools, func(t *models.Tool) string { return t.CategoryName() })
	companyTotal := sumTotalCost(tools)

	rows := make([]models.CategoryCost, 0, len(groups))
	for _, group := range groups {
		total := sumTotalCost(group.Tools)
		users := sumUsers(group.Tools)
		rows = append(rows, models.CategoryCost{
			CategoryName:       group.Key,
			ToolsCount:         len(group.Tools),
			TotalCost:          money.NewAmount(total),
			TotalUsers:         users,
			PercentageOfBudget: money.NewPercent(money.Percentage(total, companyTotal)),
			AverageCostPerUser: money.NewAmount(money.DivByCount(total, users)),
		})
	}

	var insights models.CategoryInsights
	if top, ok := firstMaxBy(rows, func(r models.CategoryCost) decimal.Decimal {
		return r.TotalCost.Decimal()
	}, nil); ok {
		insights.MostExpensiveCategory = stringPtr(top.CategoryName)
	}
	if best, ok := firstMinBy(rows, func(r models.CategoryCost) decimal.Decimal {
		return r.AverageCostPerUser.Decimal()
	}, func(r models.CategoryCost) bool {
		return r.TotalUsers > 0
	}); ok {
		insights.MostEfficientCategory = stringPtr(best.CategoryName)
	}

	return &models.CategoryCostsReport{Data: rows, Insights: insights}
}

func buildLowUsage(tools []models.Tool, query dto.LowUsageQuery) *models.LowUsageReport {
	candidates := make([]models.Tool, 0, len(tools))
	for i := range tools {
		if tools[i].IsActive() && tools[i].ActiveUsersCount <= query.MaxUsers {
			candidates = append(candidates, tools[i])
		}
	}
	sortByTotalCostDesc(candidates)

	rows := make([]models.LowUsageTool, 0, len(candidates))
	monthlySavings := decimal.Zero
	for i := range candidates {
		tool := &candidates[i]
		total := tool.TotalCost()

		costPerUser := money.Round2(tool.MonthlyCost)
		if tool.ActiveUsersCount > 0 {
			costPerUser = money.DivByCount(total, tool.ActiveUsersCount)
		}

		level := warningLevel(tool.ActiveUsersCount, costPerUser)
		if level == models.WarningHigh || level == models.WarningMedium {
			monthlySavings = monthlySavings.Add(total)
		}

		rows = append(rows, models.LowUsageTool{
			ID:               tool.ID,
			Name:             tool.Name,
			MonthlyCost:      money.NewAmount(tool.MonthlyCost),
			ActiveUsersCount: tool.ActiveUsersCount,
			CostPerUser:      money.NewAmount(costPerUser),
			Department:       tool.OwnerDepartment,
			Vendor:           tool.Vendor,
			WarningLevel:     level,
			PotentialAction:  potentialAction(level),
		})
	}

	return &models.LowUsageReport{
		Data: rows,
		SavingsAnalysis: models.SavingsAnalysis{
			TotalUnderutilizedTools: len(rows),
			PotentialMonthlySavings: money.NewAmount(monthlySavings),
			PotentialAnnualSavings:  money.NewAmount(monthlySavings.Mul(monthsPerYear)),
		},
	}
}

func buildVendorSummary(tools []models.Tool) *models.VendorSummaryReport {
	groups := groupBy(tools, func(t *models.Tool) string { return t.Vendor })

	rows := make([]models.VendorSummary, 0, len(groups))
	for _, group := range groups {
		total := sumTotalCost(group.Tools)
		users := sumUsers(group.Tools)
		avg := money.DivByCount(total, users)

		departments := make([]string, 0, len(group.Tools))
		for i := range group.Tools {
			departments = append(departments, string(group.Tools[i].OwnerDepartment))
		}

		rows = append(rows, models.VendorSummary{
			Vendor:             group.Key,
			ToolsCount:         len(group.Tools),
			TotalMonthlyCost:   money.NewAmount(total),
			TotalUsers:         users,
			Departments:        strings.Join(distinctSorted(departments), ","),
			AverageCostPerUser: money.NewAmount(avg),
			VendorEfficiency:   vendorEfficiency(avg),
		})
	}

	var insights models.VendorInsights
	if top, ok := firstMaxBy(rows, func(r models.VendorSummary) decimal.Decimal {
		return r.TotalMonthlyCost.Decimal()
	}, nil); ok {
		insights.MostExpensiveVendor = stringPtr(top.Vendor)
	}
	if best, ok := firstMinBy(rows, func(r models.VendorSummary) decimal.Decimal {
		return r.AverageCostPerUser.Decimal()
	}, func(r models.VendorSummary) bool {
		return r.TotalUsers > 0
	}); ok {
		insights.MostEfficientVendor = stringPtr(best.Vendor)
	}
	for _, row := range rows {
		if row.ToolsCount == 1 {
			insights.SingleToolVendors++
		}
	}

	return &models.VendorSummaryReport{Data: rows, VendorInsights: insights}
}
