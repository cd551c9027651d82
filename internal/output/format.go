package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
)

// FormatCurrency renders a monetary amount compactly: one decimal place in
// millions at or above $1M, whole thousands at or above $1K, and a plain
// integer amount below that.
func FormatCurrency(v decimal.Decimal) string {
	abs := v.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return "$" + v.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return "$" + v.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + v.StringFixed(0)
	}
}

// FormatFullCurrency renders the exact amount without compaction.
func FormatFullCurrency(v decimal.Decimal) string {
	return "$" + v.StringFixed(0)
}

// FormatPercent renders a decimal percentage with the given precision.
func FormatPercent(v decimal.Decimal, places int32) string {
	return v.StringFixed(places) + "%"
}

// FormatImpact renders an impact score as a signed integer percentage, or
// "n/a" when the baseline made a percentage change undefined.
func FormatImpact(score domain.ImpactScore) string {
	if !score.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%+d%%", score.Percent)
}

// LeverName returns the display name of a lever.
func LeverName(id domain.LeverID) string {
	switch id {
	case domain.LeverRetention:
		return "Retention"
	case domain.LeverMonetization:
		return "Monetization"
	case domain.LeverActivation:
		return "Activation"
	}
	return string(id)
}
