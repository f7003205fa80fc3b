package models

// Department is the owning business unit of a tool.
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
	DepartmentDesign      Department = "Design"
)

// AllDepartments returns every valid department
func AllDepartments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentSales,
		DepartmentMarketing,
		DepartmentHR,
		DepartmentFinance,
		DepartmentOperations,
		DepartmentDesign,
	}
}

func (d Department) IsValid() bool {
	for _, valid := range AllDepartments() {
		if d == valid {
			return true
		}
	}
	return false
}

// ToolStatus is the lifecycle state of a tool. Only active tools take part in analytics.
type ToolStatus string

const (
	ToolStatusActive     ToolStatus = "active"
	ToolStatusDeprecated ToolStatus = "deprecated"
	ToolStatusTrial      ToolStatus = "trial"
)

func AllToolStatuses() []ToolStatus {
	return []ToolStatus{ToolStatusActive, ToolStatusDeprecated, ToolStatusTrial}
}

func (s ToolStatus) IsValid() bool {
	switch s {
	case ToolStatusActive, ToolStatusDeprecated, ToolStatusTrial:
		return true
	}
	return false
}

// EfficiencyRating grades a tool's cost per user against the company average.
type EfficiencyRating string

const (
	EfficiencyExcellent EfficiencyRating = "excellent"
	EfficiencyGood      EfficiencyRating = "good"
	EfficiencyAverage   EfficiencyRating = "average"
	EfficiencyLow       EfficiencyRating = "low"
)

// WarningLevel is the severity attached to an underutilized tool.
type WarningLevel string

const (
	WarningHigh   WarningLevel = "high"
	WarningMedium WarningLevel = "medium"
	WarningLow    WarningLevel = "low"
)

// VendorEfficiency grades a vendor by its average cost per user.
type VendorEfficiency string

const (
	VendorExcellent VendorEfficiency = "excellent"
	VendorGood      VendorEfficiency = "good"
	VendorAverage   VendorEfficiency = "average"
	VendorPoor      VendorEfficiency = "poor"
)
