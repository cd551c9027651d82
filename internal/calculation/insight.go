package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// InsightKind selects which narrative template the display layer fills in.
type InsightKind string

const (
	// InsightBaselineUpside: no lever has been moved; show the upside at
	// the suggested targets instead.
	InsightBaselineUpside InsightKind = "baseline_upside"

	// InsightSingleLever: exactly one lever is driving the whole change.
	InsightSingleLever InsightKind = "single_lever"

	// InsightPairOverActivation: retention plus monetization together
	// outweigh activation by more than the dominance factor.
	InsightPairOverActivation InsightKind = "pair_over_activation"

	// InsightLargestLever: generic largest lever, optionally combined
	// with the runner-up.
	InsightLargestLever InsightKind = "largest_lever"
)

// Insight is the ranker's selection plus the numeric fill-ins the chosen
// template renders. The prose itself belongs to the display layer.
type Insight struct {
	Kind     InsightKind  `json:"kind"`
	Ranked   []LeverImpact `json:"ranked"`
	Top      LeverImpact  `json:"top"`
	RunnerUp *LeverImpact `json:"runnerUp,omitempty"`

	// PairImpact and ActivationImpact carry the comparison inputs when
	// Kind is InsightPairOverActivation.
	PairImpact       int64 `json:"pairImpact,omitempty"`
	ActivationImpact int64 `json:"activationImpact,omitempty"`
}

// RankedInsight ranks the levers' independent impacts at their current
// effective values and selects the narrative template that describes which
// lever(s) dominate. Ranking is by descending absolute impact; ties retain
// fixed lever order.
func (e *Engine) RankedInsight(a domain.Assumptions, ov domain.Overrides) Insight {
	current := e.CurrentImpacts(a, ov)

	allZero := true
	for _, li := range current {
		if !li.Impact.IsZero() {
			allZero = false
			break
		}
	}

	// Nothing moved yet: rank the upside at the suggested targets instead.
	if allZero {
		ranked := rankByAbsImpact(e.TargetImpacts(a))
		insight := Insight{Kind: InsightBaselineUpside, Ranked: ranked, Top: ranked[0]}
		if len(ranked) > 1 {
			insight.RunnerUp = &ranked[1]
		}
		return insight
	}

	ranked := rankByAbsImpact(current)

	modified := 0
	for _, li := range current {
		if !li.Impact.IsZero() {
			modified++
		}
	}
	if modified == 1 {
		return Insight{Kind: InsightSingleLever, Ranked: ranked, Top: ranked[0]}
	}

	// Two or more levers moved: does the retention+monetization pair beat
	// activation scaled by the dominance factor?
	var pair, activation int64
	for _, li := range current {
		switch li.Lever {
		case domain.LeverRetention, domain.LeverMonetization:
			pair += li.Impact.Abs()
		case domain.LeverActivation:
			activation = li.Impact.Abs()
		}
	}
	threshold := decimal.NewFromInt(activation).Mul(e.PairDominanceFactor)
	if decimal.NewFromInt(pair).GreaterThan(threshold) {
		return Insight{
			Kind:             InsightPairOverActivation,
			Ranked:           ranked,
			Top:              ranked[0],
			RunnerUp:         &ranked[1],
			PairImpact:       pair,
			ActivationImpact: activation,
		}
	}

	insight := Insight{Kind: InsightLargestLever, Ranked: ranked, Top: ranked[0]}
	if len(ranked) > 1 {
		insight.RunnerUp = &ranked[1]
	}
	return insight
}

// rankByAbsImpact sorts descending by absolute impact, keeping input order
// on ties.
func rankByAbsImpact(impacts []LeverImpact) []LeverImpact {
	ranked := make([]LeverImpact, len(impacts))
	copy(ranked, impacts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Impact.Abs() > ranked[j].Impact.Abs()
	})
	return ranked
}
