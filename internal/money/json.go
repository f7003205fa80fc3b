package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value that always serializes with exactly two
// fractional digits as a bare JSON number (10 -> 10.00).
type Amount decimal.Decimal

// NewAmount rounds d to money scale.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.Round(ScaleMoney))
}

// AmountFromString parses s. It panics on malformed input and is meant for
// constants and tests.
func AmountFromString(s string) Amount {
	return NewAmount(decimal.RequireFromString(s))
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func (a Amount) String() string {
	return decimal.Decimal(a).StringFixed(ScaleMoney)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	*a = Amount(d)
	return nil
}

// Percent is a percentage with exactly one fractional digit on the wire.
type Percent decimal.Decimal

func NewPercent(d decimal.Decimal) Percent {
	return Percent(d.Round(ScalePercent))
}

func (p Percent) Decimal() decimal.Decimal {
	return decimal.Decimal(p)
}

func (p Percent) String() string {
	return decimal.Decimal(p).StringFixed(ScalePercent)
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid percentage: %w", err)
	}
	*p = Percent(d)
	return nil
}
