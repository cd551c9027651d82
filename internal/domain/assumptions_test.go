package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestScenario_SetAndClearOverride(t *testing.T) {
	s := NewScenario(DefaultAssumptions())
	require.Nil(t, s.Overrides.Churn, "Fresh scenario has no overrides")

	s.SetOverride(LeverRetention, dec(2))
	require.NotNil(t, s.Overrides.Churn)
	assert.True(t, s.Overrides.Churn.Equal(dec(2)))
	assert.Nil(t, s.Overrides.ARPU, "Other levers stay unset")

	s.ClearOverride(LeverRetention)
	assert.Nil(t, s.Overrides.Churn)
}

func TestScenario_ResetOverrides(t *testing.T) {
	s := NewScenario(DefaultAssumptions())
	s.SetOverride(LeverRetention, dec(2))
	s.SetOverride(LeverMonetization, dec(9))
	s.SetOverride(LeverActivation, dec(60))

	s.ResetOverrides()

	assert.Nil(t, s.Overrides.Churn)
	assert.Nil(t, s.Overrides.ARPU)
	assert.Nil(t, s.Overrides.Activation)
}

func TestScenario_SetBaselineClearsOverride(t *testing.T) {
	s := NewScenario(DefaultAssumptions())
	s.SetOverride(LeverRetention, dec(2))
	s.SetOverride(LeverMonetization, dec(9))

	s.SetBaseline(LeverRetention, dec(4))

	assert.True(t, s.Assumptions.ChurnRate.Equal(dec(4)), "Baseline field takes the edit")
	assert.Nil(t, s.Overrides.Churn, "Direct edit removes the stale override")
	require.NotNil(t, s.Overrides.ARPU, "Unrelated overrides survive a baseline edit")
	assert.True(t, s.Overrides.ARPU.Equal(dec(9)))
}

func TestScenario_SetBaselineEachLever(t *testing.T) {
	tests := []struct {
		lever LeverID
		read  func(Assumptions) decimal.Decimal
	}{
		{LeverRetention, func(a Assumptions) decimal.Decimal { return a.ChurnRate }},
		{LeverMonetization, func(a Assumptions) decimal.Decimal { return a.ARPU }},
		{LeverActivation, func(a Assumptions) decimal.Decimal { return a.ActivationRate }},
	}

	for _, tt := range tests {
		t.Run(string(tt.lever), func(t *testing.T) {
			s := NewScenario(DefaultAssumptions())
			s.SetOverride(tt.lever, dec(10))

			s.SetBaseline(tt.lever, dec(11))

			assert.True(t, tt.read(s.Assumptions).Equal(dec(11)))
			assert.Nil(t, s.Overrides.Get(tt.lever))
		})
	}
}

func TestOverrides_Resolve(t *testing.T) {
	a := DefaultAssumptions()

	unset := Overrides{}
	assert.True(t, unset.Resolve(LeverRetention, a).Equal(a.ChurnRate),
		"Unset lever resolves to the baseline field")

	set := unset.WithLever(LeverMonetization, dec(9))
	assert.True(t, set.Resolve(LeverMonetization, a).Equal(dec(9)))
	assert.True(t, set.Resolve(LeverActivation, a).Equal(a.ActivationRate),
		"Setting one lever leaves the others on baseline")
}

func TestOverrides_SetEqualToBaselineStaysSet(t *testing.T) {
	a := DefaultAssumptions()

	// An override pinned to the baseline value is still an override: it
	// survives later baseline edits to other fields and Get reports it.
	ov := Overrides{}.WithLever(LeverRetention, a.ChurnRate)

	require.NotNil(t, ov.Get(LeverRetention))
	assert.True(t, ov.Get(LeverRetention).Equal(a.ChurnRate))
	assert.True(t, ov.Resolve(LeverRetention, a).Equal(a.ChurnRate))
}

func TestOverrides_WithLeverCopies(t *testing.T) {
	base := Overrides{}
	_ = base.WithLever(LeverRetention, dec(2))

	assert.Nil(t, base.Churn, "WithLever returns a copy, never mutates the receiver")
}
