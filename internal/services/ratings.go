package services

import (
	"internal-tools-api/internal/models"
	"internal-tools-api/internal/money"

	"github.com/shopspring/decimal"
)

var (
	ratioExcellent = decimal.RequireFromString("0.50")
	ratioGood      = decimal.RequireFromString("0.80")
	ratioAverage   = decimal.RequireFromString("1.20")

	warningHighCost   = decimal.NewFromInt(50)
	warningMediumCost = decimal.NewFromInt(20)

	vendorExcellentCost = decimal.NewFromInt(5)
	vendorGoodCost      = decimal.NewFromInt(15)
	vendorAverageCost   = decimal.NewFromInt(25)
)

const (
	actionCancel  = "Consider canceling or downgrading"
	actionReview  = "Review usage and consider optimization"
	actionMonitor = "Monitor usage trends"
)

// efficiencyRating compares a tool's cost per user with the company average.
// The ratio is rounded to two places before it is compared.
func efficiencyRating(costPerUser, companyAvg decimal.Decimal) models.EfficiencyRating {
	if companyAvg.IsZero() {
		return models.EfficiencyAverage
	}

	ratio := money.Div(costPerUser, companyAvg, money.ScaleMoney)
	switch {
	case ratio.LessThan(ratioExcellent):
		return models.EfficiencyExcellent
	case ratio.LessThan(ratioGood):
		return models.EfficiencyGood
	case ratio.LessThanOrEqual(ratioAverage):
		return models.EfficiencyAverage
	default:
		return models.EfficiencyLow
	}
}

func warningLevel(users int, costPerUser decimal.Decimal) models.WarningLevel {
	switch {
	case users == 0:
		return models.WarningHigh
	case costPerUser.GreaterThan(warningHighCost):
		return models.WarningHigh
	case costPerUser.GreaterThanOrEqual(warningMediumCost):
		return models.WarningMedium
	default:
		return models.WarningLow
	}
}

func potentialAction(level models.WarningLevel) string {
	switch level {
	case models.WarningHigh:
		return actionCancel
	case models.WarningMedium:
		return actionReview
	default:
		return actionMonitor
	}
}

func vendorEfficiency(avgCostPerUser decimal.Decimal) models.VendorEfficiency {
	switch {
	case avgCostPerUser.LessThan(vendorExcellentCost):
		return models.VendorExcellent
	case avgCostPerUser.LessThan(vendorGoodCost):
		return models.VendorGood
	case avgCostPerUser.LessThanOrEqual(vendorAverageCost):
		return models.VendorAverage
	default:
		return models.VendorPoor
	}
}
