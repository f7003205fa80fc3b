// Package money holds the fixed-point helpers used for every cost figure the
// service reports. All rounding is half away from zero, which for the
// non-negative amounts handled here is the usual half-up rule.
package money

import "github.com/shopspring/decimal"

const (
	// ScaleMoney is the number of fractional digits for monetary values.
	ScaleMoney int32 = 2
	// ScalePercent is the number of fractional digits for percentages.
	ScalePercent int32 = 1
	// ScaleRatio is the scale of the intermediate ratio behind a percentage.
	ScaleRatio int32 = 3
)

var hundred = decimal.NewFromInt(100)

// TotalCost returns monthly × users at money scale.
func TotalCost(monthly decimal.Decimal, users int) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(int64(users))).Round(ScaleMoney)
}

// Div divides a by b at the given scale. A zero divisor yields zero.
func Div(a, b decimal.Decimal, scale int32) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, scale)
}

// DivMoney divides a by b at money scale.
func DivMoney(a, b decimal.Decimal) decimal.Decimal {
	return Div(a, b, ScaleMoney)
}

// DivByCount divides a by an integer count at money scale.
func DivByCount(a decimal.Decimal, n int) decimal.Decimal {
	return DivMoney(a, decimal.NewFromInt(int64(n)))
}

// Percentage returns part/whole as a percentage with one fractional digit.
// The ratio is taken at scale 3 before scaling by 100. A non-positive whole
// yields zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.Sign() <= 0 {
		return decimal.Zero
	}
	return part.DivRound(whole, ScaleRatio).Mul(hundred).Round(ScalePercent)
}

// Round2 rounds d to money scale.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(ScaleMoney)
}

// Sum adds the given values and rounds the result to money scale.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total.Round(ScaleMoney)
}

// HasMaxScale reports whether d carries at most the given number of
// significant fractional digits. Trailing zeros do not count.
func HasMaxScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Truncate(scale))
}
