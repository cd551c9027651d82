package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCompare_NoOverrides(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())
	a := domain.DefaultAssumptions()

	compSet := ce.Compare(a, domain.Overrides{})

	require.NotNil(t, compSet.BaseResult)
	assert.Equal(t, "baseline", compSet.BaseName)
	assert.True(t, compSet.BaseResult.Month12MRR.Equal(dec(841635)), "got %s", compSet.BaseResult.Month12MRR)

	// No current scenario row when nothing is overridden; one alternative
	// per lever at its target.
	require.Len(t, compSet.AlternativeResults, 3)
	assert.Equal(t, "retention at target", compSet.AlternativeResults[0].Name)
	assert.Equal(t, "monetization at target", compSet.AlternativeResults[1].Name)
	assert.Equal(t, "activation at target", compSet.AlternativeResults[2].Name)

	wantLifts := []int64{16, 50, 27}
	for i, alt := range compSet.AlternativeResults {
		require.True(t, alt.LiftPctFromBase.Defined)
		assert.Equal(t, wantLifts[i], alt.LiftPctFromBase.Percent, "alternative %s", alt.Name)
	}

	assert.Equal(t, calculation.InsightBaselineUpside, compSet.Insight.Kind)
	require.Len(t, compSet.Plan, 3)
}

func TestCompare_WithOverrides(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())
	a := domain.DefaultAssumptions()
	ov := domain.Overrides{Churn: decPtr(2)}

	compSet := ce.Compare(a, ov)

	require.Len(t, compSet.AlternativeResults, 4, "Current scenario plus the three targets")
	current := compSet.AlternativeResults[0]
	assert.Equal(t, "current", current.Name)
	assert.True(t, current.Month12MRR.Equal(dec(974161)), "got %s", current.Month12MRR)
	assert.True(t, current.MRRDiffFromBase.Equal(dec(132526)), "got %s", current.MRRDiffFromBase)
	require.True(t, current.LiftPctFromBase.Defined)
	assert.Equal(t, int64(16), current.LiftPctFromBase.Percent)

	assert.Equal(t, calculation.InsightSingleLever, compSet.Insight.Kind)
}

func TestCompare_Recommendations(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())
	a := domain.DefaultAssumptions()

	compSet := ce.Compare(a, domain.Overrides{Churn: decPtr(2)})

	require.NotEmpty(t, compSet.Recommendations)
	assert.Contains(t, compSet.Recommendations[0], "monetization at target",
		"The biggest month-12 lift comes from the ARPU target")
	assert.Contains(t, compSet.Recommendations[0], "+50%")

	// With churn already at target, the next move is repricing.
	found := false
	for _, rec := range compSet.Recommendations {
		if rec == "Next move: Reprice around delivered value (50% upside remaining)" {
			found = true
		}
	}
	assert.True(t, found, "recommendations: %v", compSet.Recommendations)
}

func TestCompare_DegenerateBaseline(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())
	a := domain.DefaultAssumptions()
	a.Customers = dec(0)
	a.LeadsPerMonth = dec(0)

	compSet := ce.Compare(a, domain.Overrides{ARPU: decPtr(9)})

	require.NotEmpty(t, compSet.AlternativeResults)
	for _, alt := range compSet.AlternativeResults {
		assert.False(t, alt.LiftPctFromBase.Defined, "%s: zero base makes lift undefined", alt.Name)
	}
	assert.Empty(t, compSet.Recommendations, "Nothing beats a base nothing can move")
}
