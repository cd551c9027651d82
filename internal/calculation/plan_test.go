package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growthkit/mrrcalc/internal/domain"
)

func TestPrioritizePlan_DefaultOrdering(t *testing.T) {
	engine := NewEngine()
	a := domain.DefaultAssumptions()

	plan := engine.PrioritizePlan(a, domain.Overrides{})

	require.Len(t, plan, 3)
	assert.Equal(t, domain.LeverMonetization, plan[0].Initiative.Lever, "ARPU has the largest untouched upside")
	assert.Equal(t, domain.LeverActivation, plan[1].Initiative.Lever)
	assert.Equal(t, domain.LeverRetention, plan[2].Initiative.Lever)

	assert.Equal(t, int64(50), plan[0].Remaining)
	assert.Equal(t, int64(27), plan[1].Remaining)
	assert.Equal(t, int64(16), plan[2].Remaining)
}

func TestPrioritizePlan_RealizedLeverSinks(t *testing.T) {
	engine := NewEngine()
	a := domain.DefaultAssumptions()
	ov := domain.Overrides{Churn: decPtr(dec(2))}

	plan := engine.PrioritizePlan(a, ov)

	require.Len(t, plan, 3)
	assert.Equal(t, domain.LeverRetention, plan[2].Initiative.Lever, "Fully realized retention drops to the bottom")
	assert.Equal(t, int64(0), plan[2].Remaining)
	assert.Equal(t, int64(16), plan[2].CurrentImpact)
}

func TestPrioritizePlan_NonNegativeRemaining(t *testing.T) {
	engine := NewEngine()
	a := domain.DefaultAssumptions()

	// ARPU pushed past its target: current impact (100) exceeds the
	// target upside (50). Remaining must clamp at zero, not go negative.
	ov := domain.Overrides{ARPU: decPtr(dec(12))}

	plan := engine.PrioritizePlan(a, ov)
	for _, item := range plan {
		assert.GreaterOrEqual(t, item.Remaining, int64(0), "%s remaining must never be negative", item.Initiative.Lever)
	}
}

func TestPrioritizePlan_AllAtTargetsKeepsDeclaredOrder(t *testing.T) {
	engine := NewEngine()
	a := domain.DefaultAssumptions()
	ov := domain.Overrides{
		Churn:      decPtr(dec(2)),
		ARPU:       decPtr(dec(9)),
		Activation: decPtr(dec(60)),
	}

	plan := engine.PrioritizePlan(a, ov)

	require.Len(t, plan, 3)
	// Everything realized: all remainders tie at zero and the declared
	// initiative order survives.
	assert.Equal(t, domain.LeverRetention, plan[0].Initiative.Lever)
	assert.Equal(t, domain.LeverActivation, plan[1].Initiative.Lever)
	assert.Equal(t, domain.LeverMonetization, plan[2].Initiative.Lever)
	for _, item := range plan {
		assert.Equal(t, int64(0), item.Remaining)
	}
}

func TestPrioritizePlan_DegenerateBaseline(t *testing.T) {
	engine := NewEngine()
	a := domain.DefaultAssumptions()
	a.Customers = dec(0)
	a.LeadsPerMonth = dec(0)

	plan := engine.PrioritizePlan(a, domain.Overrides{})

	require.Len(t, plan, 3)
	for _, item := range plan {
		assert.Equal(t, int64(0), item.Remaining, "Undefined impacts rank as zero")
	}
}
