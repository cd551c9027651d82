package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/growthkit/mrrcalc/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "$0"},
		{42, "$42"},
		{999, "$999"},
		{1000, "$1K"},
		{340000, "$340K"},
		{841635, "$842K"},
		{999499, "$999K"},
		{1000000, "$1.0M"},
		{1234567, "$1.2M"},
		{1478690, "$1.5M"},
	}

	for _, tt := range tests {
		got := FormatCurrency(decimal.NewFromInt(tt.value))
		assert.Equal(t, tt.want, got, "value %d", tt.value)
	}
}

func TestFormatFullCurrency(t *testing.T) {
	assert.Equal(t, "$841635", FormatFullCurrency(decimal.NewFromInt(841635)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(decimal.NewFromFloat(12.5), 1))
	assert.Equal(t, "13%", FormatPercent(decimal.NewFromFloat(12.5), 0))
}

func TestFormatImpact(t *testing.T) {
	assert.Equal(t, "+16%", FormatImpact(domain.Impact(16)))
	assert.Equal(t, "-16%", FormatImpact(domain.Impact(-16)))
	assert.Equal(t, "+0%", FormatImpact(domain.Impact(0)))
	assert.Equal(t, "n/a", FormatImpact(domain.UndefinedImpact()))
}

func TestLeverName(t *testing.T) {
	assert.Equal(t, "Retention", LeverName(domain.LeverRetention))
	assert.Equal(t, "Monetization", LeverName(domain.LeverMonetization))
	assert.Equal(t, "Activation", LeverName(domain.LeverActivation))
	assert.Equal(t, "custom", LeverName(domain.LeverID("custom")))
}
