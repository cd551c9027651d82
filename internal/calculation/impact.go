package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// IndependentImpact measures the percentage MRR change at month 12 from
// moving exactly one lever to candidate, all other parameters held at
// baseline. A zero baseline MRR has no defined percentage and returns the
// undefined sentinel instead of propagating a division by zero.
func (e *Engine) IndependentImpact(a domain.Assumptions, id domain.LeverID, candidate decimal.Decimal) domain.ImpactScore {
	baseline := e.Project(a, domain.Overrides{}, ImpactHorizonMonths)
	if baseline.IsZero() {
		e.Logger.Warnf("baseline MRR is zero; impact of %s is undefined", id)
		return domain.UndefinedImpact()
	}

	scenario := e.Project(a, domain.Overrides{}.WithLever(id, candidate), ImpactHorizonMonths)
	pct := scenario.Sub(baseline).Div(baseline).Mul(hundred).Round(0)
	return domain.Impact(pct.IntPart())
}

// CurrentImpacts computes each lever's independent impact at its current
// effective value, in fixed lever order.
func (e *Engine) CurrentImpacts(a domain.Assumptions, ov domain.Overrides) []LeverImpact {
	impacts := make([]LeverImpact, 0, 3)
	for _, lever := range domain.Levers() {
		value := ov.Resolve(lever.ID, a)
		impacts = append(impacts, LeverImpact{
			Lever:  lever.ID,
			Value:  value,
			Impact: e.IndependentImpact(a, lever.ID, value),
		})
	}
	return impacts
}

// TargetImpacts computes each lever's independent impact at its suggested
// target, in fixed lever order.
func (e *Engine) TargetImpacts(a domain.Assumptions) []LeverImpact {
	impacts := make([]LeverImpact, 0, 3)
	for _, lever := range domain.Levers() {
		impacts = append(impacts, LeverImpact{
			Lever:  lever.ID,
			Value:  lever.Target,
			Impact: e.IndependentImpact(a, lever.ID, lever.Target),
		})
	}
	return impacts
}

// LeverImpact pairs a lever with the candidate value that was evaluated and
// the resulting impact score.
type LeverImpact struct {
	Lever  domain.LeverID     `json:"lever"`
	Value  decimal.Decimal    `json:"value"`
	Impact domain.ImpactScore `json:"impact"`
}
