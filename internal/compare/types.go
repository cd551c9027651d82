package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/domain"
)

// ScenarioResult is a single projected scenario with its metrics and its
// deltas against the base scenario.
type ScenarioResult struct {
	Name      string                  `json:"name"`
	Overrides domain.Overrides        `json:"overrides"`
	Series    domain.ProjectionResult `json:"series"`

	// Key metric: MRR at the impact horizon.
	Month12MRR decimal.Decimal `json:"month12MRR"`

	// Comparison to base.
	MRRDiffFromBase decimal.Decimal    `json:"mrrDiffFromBase"`
	LiftPctFromBase domain.ImpactScore `json:"liftPctFromBase"`
}

// ComparisonSet collects the base scenario, its alternatives, and the
// narrative outputs computed from the current session state.
type ComparisonSet struct {
	BaseName           string              `json:"baseName"`
	BaseResult         *ScenarioResult     `json:"baseResult"`
	AlternativeResults []ScenarioResult    `json:"alternativeResults"`
	Insight            calculation.Insight `json:"insight"`
	Plan               []domain.RankedInitiative `json:"plan"`
	Recommendations    []string            `json:"recommendations"`
	ConfigPath         string              `json:"configPath,omitempty"`
}

// GenerateRecommendations derives plain-language pointers from a comparison:
// the alternative with the best month-12 MRR and the plan item with the most
// unrealized upside.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	best := &compSet.AlternativeResults[0]
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].Month12MRR.GreaterThan(best.Month12MRR) {
			best = &compSet.AlternativeResults[i]
		}
	}

	if best.Month12MRR.GreaterThan(compSet.BaseResult.Month12MRR) {
		lift := "n/a"
		if best.LiftPctFromBase.Defined {
			lift = fmt.Sprintf("%+d%%", best.LiftPctFromBase.Percent)
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Best month-12 MRR: %s (%s vs base)", best.Name, lift))
	}

	for _, item := range compSet.Plan {
		if item.Remaining > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Next move: %s (%d%% upside remaining)", item.Initiative.Title, item.Remaining))
			break
		}
	}

	return recommendations
}
