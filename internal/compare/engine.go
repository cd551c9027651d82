package compare

import (
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/domain"
)

// CompareEngine orchestrates scenario comparison: the untouched baseline
// against the current override scenario and each lever pushed to its
// suggested target on its own.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a new comparison engine.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare projects the base and alternative scenarios and attaches the
// insight, plan, and recommendations for the current override state.
func (ce *CompareEngine) Compare(a domain.Assumptions, ov domain.Overrides) *ComparisonSet {
	base := ce.evaluate("baseline", a, domain.Overrides{})

	alternatives := []ScenarioResult{}
	if anyOverrideSet(ov) {
		alternatives = append(alternatives, ce.compareToBase(ce.evaluate("current", a, ov), base))
	}
	for _, lever := range domain.Levers() {
		alt := ce.evaluate(string(lever.ID)+" at target", a, domain.Overrides{}.WithLever(lever.ID, lever.Target))
		alternatives = append(alternatives, ce.compareToBase(alt, base))
	}

	compSet := &ComparisonSet{
		BaseName:           base.Name,
		BaseResult:         &base,
		AlternativeResults: alternatives,
		Insight:            ce.CalcEngine.RankedInsight(a, ov),
		Plan:               ce.CalcEngine.PrioritizePlan(a, ov),
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet
}

// evaluate runs one scenario at the display horizons.
func (ce *CompareEngine) evaluate(name string, a domain.Assumptions, ov domain.Overrides) ScenarioResult {
	series := ce.CalcEngine.ProjectSeries(a, ov, domain.HorizonPoints())
	return ScenarioResult{
		Name:       name,
		Overrides:  ov,
		Series:     series,
		Month12MRR: series.MRRAt(calculation.ImpactHorizonMonths),
	}
}

// compareToBase fills a scenario's deltas against the base result.
func (ce *CompareEngine) compareToBase(scenario, base ScenarioResult) ScenarioResult {
	scenario.MRRDiffFromBase = scenario.Month12MRR.Sub(base.Month12MRR)

	if base.Month12MRR.IsZero() {
		scenario.LiftPctFromBase = domain.UndefinedImpact()
		return scenario
	}

	pct := scenario.MRRDiffFromBase.
		Div(base.Month12MRR).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	scenario.LiftPctFromBase = domain.Impact(pct)

	return scenario
}

func anyOverrideSet(ov domain.Overrides) bool {
	for _, lever := range domain.Levers() {
		if ov.Get(lever.ID) != nil {
			return true
		}
	}
	return false
}
