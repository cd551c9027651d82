package domain

import (
	"github.com/shopspring/decimal"
)

// LeverID identifies one of the three adjustable growth levers.
type LeverID string

const (
	LeverRetention    LeverID = "retention"
	LeverMonetization LeverID = "monetization"
	LeverActivation   LeverID = "activation"
)

// Direction tags which way an improvement moves a lever. Display-only; the
// simulation never consults it.
type Direction string

const (
	HigherIsBetter Direction = "higher-is-better"
	LowerIsBetter  Direction = "lower-is-better"
)

// Lever describes one adjustable parameter: the assumption field it
// overrides, its suggested improvement target, and the valid range used for
// input clamping.
type Lever struct {
	ID          LeverID         `yaml:"id" json:"id"`
	Label       string          `yaml:"label" json:"label"`
	Unit        string          `yaml:"unit" json:"unit"`
	Target      decimal.Decimal `yaml:"target" json:"target"`
	Min         decimal.Decimal `yaml:"min" json:"min"`
	Max         decimal.Decimal `yaml:"max" json:"max"`
	Step        decimal.Decimal `yaml:"step" json:"step"`
	Direction   Direction       `yaml:"direction" json:"direction"`
	Description string          `yaml:"description" json:"description"`
}

var (
	retentionLever = Lever{
		ID:          LeverRetention,
		Label:       "Monthly churn",
		Unit:        "%",
		Target:      decimal.NewFromInt(2),
		Min:         decimal.NewFromFloat(0.5),
		Max:         decimal.NewFromInt(20),
		Step:        decimal.NewFromFloat(0.5),
		Direction:   LowerIsBetter,
		Description: "Share of customers lost each month",
	}

	monetizationLever = Lever{
		ID:          LeverMonetization,
		Label:       "ARPU",
		Unit:        "k/mo",
		Target:      decimal.NewFromInt(9),
		Min:         decimal.NewFromInt(1),
		Max:         decimal.NewFromInt(20),
		Step:        decimal.NewFromFloat(0.5),
		Direction:   HigherIsBetter,
		Description: "Average revenue per customer, thousands per month",
	}

	activationLever = Lever{
		ID:          LeverActivation,
		Label:       "Activation rate",
		Unit:        "%",
		Target:      decimal.NewFromInt(60),
		Min:         decimal.NewFromInt(5),
		Max:         decimal.NewFromInt(100),
		Step:        decimal.NewFromInt(5),
		Direction:   HigherIsBetter,
		Description: "New customers reaching first value within 14 days",
	}
)

// Levers returns the fixed lever table. Order matters: ranking tie-breaks
// retain this order.
func Levers() []Lever {
	return []Lever{retentionLever, monetizationLever, activationLever}
}

// LeverByID looks a lever up in the fixed table.
func LeverByID(id LeverID) (Lever, bool) {
	for _, l := range Levers() {
		if l.ID == id {
			return l, true
		}
	}
	return Lever{}, false
}

// Clamp bounds a candidate value to the lever's valid range.
func (l Lever) Clamp(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(l.Min) {
		return l.Min
	}
	if v.GreaterThan(l.Max) {
		return l.Max
	}
	return v
}
