package calculation

import (
	"sort"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// PrioritizePlan orders the fixed initiatives by remaining unrealized
// upside: the gap between each lever's impact at its suggested target and
// its impact at the current setting. Initiatives whose lever already sits
// at or past its target contribute zero and sink to the bottom; ties keep
// the declared initiative order.
func (e *Engine) PrioritizePlan(a domain.Assumptions, ov domain.Overrides) []domain.RankedInitiative {
	ranked := make([]domain.RankedInitiative, 0, 3)

	for _, init := range domain.Initiatives() {
		lever, ok := domain.LeverByID(init.Lever)
		if !ok {
			continue
		}

		upside := e.IndependentImpact(a, lever.ID, lever.Target).Abs()
		current := e.IndependentImpact(a, lever.ID, ov.Resolve(lever.ID, a)).Abs()

		remaining := upside - current
		if remaining < 0 {
			remaining = 0
		}

		ranked = append(ranked, domain.RankedInitiative{
			Initiative:     init,
			UpsideAtTarget: upside,
			CurrentImpact:  current,
			Remaining:      remaining,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Remaining > ranked[j].Remaining
	})
	return ranked
}
