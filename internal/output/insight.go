package output

import (
	"fmt"

	"github.com/growthkit/mrrcalc/internal/calculation"
)

// InsightText fills the prose template selected by the ranker.
func InsightText(insight calculation.Insight) string {
	switch insight.Kind {
	case calculation.InsightBaselineUpside:
		top := insight.Top
		if insight.RunnerUp == nil {
			return fmt.Sprintf("No levers moved yet. %s at its target is worth about %d%% more MRR by month 12.",
				LeverName(top.Lever), top.Impact.Abs())
		}
		return fmt.Sprintf("No levers moved yet. %s at its target is worth about %d%% more MRR by month 12; %s adds another %d%%.",
			LeverName(top.Lever), top.Impact.Abs(),
			LeverName(insight.RunnerUp.Lever), insight.RunnerUp.Impact.Abs())

	case calculation.InsightSingleLever:
		return fmt.Sprintf("%s is doing all the work right now, moving month-12 MRR by %s.",
			LeverName(insight.Top.Lever), FormatImpact(insight.Top.Impact))

	case calculation.InsightPairOverActivation:
		return fmt.Sprintf("Retention and monetization together move month-12 MRR by about %d%%, well beyond what activation contributes (%d%%).",
			insight.PairImpact, insight.ActivationImpact)

	case calculation.InsightLargestLever:
		top := insight.Top
		if insight.RunnerUp == nil || insight.RunnerUp.Impact.IsZero() {
			return fmt.Sprintf("%s is your biggest lever, moving month-12 MRR by %s.",
				LeverName(top.Lever), FormatImpact(top.Impact))
		}
		return fmt.Sprintf("%s is your biggest lever at %s; %s contributes another %s.",
			LeverName(top.Lever), FormatImpact(top.Impact),
			LeverName(insight.RunnerUp.Lever), FormatImpact(insight.RunnerUp.Impact))
	}
	return ""
}
