package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/domain"
)

// ReportGenerator renders calculation results in the supported output
// formats. All methods write to the generator's writer.
type ReportGenerator struct {
	w io.Writer
}

// NewReportGenerator creates a report generator writing to w.
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{w: w}
}

// ProjectionReport renders the baseline and scenario series side by side
// with the percent lift at each sampled month.
func (rg *ReportGenerator) ProjectionReport(baseline, scenario domain.ProjectionResult, format string) error {
	switch format {
	case "console":
		return rg.projectionTable(baseline, scenario)
	case "json":
		return rg.writeJSON(struct {
			Baseline domain.ProjectionResult `json:"baseline"`
			Scenario domain.ProjectionResult `json:"scenario"`
		}{baseline, scenario})
	case "csv":
		return rg.projectionCSV(baseline, scenario)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) projectionTable(baseline, scenario domain.ProjectionResult) error {
	fmt.Fprintln(rg.w, "MRR PROJECTION")
	fmt.Fprintln(rg.w, strings.Repeat("=", 52))
	fmt.Fprintf(rg.w, "%-8s %12s %12s %10s\n", "Month", "Baseline", "Scenario", "Lift")
	fmt.Fprintln(rg.w, strings.Repeat("-", 52))

	for i, p := range baseline.Points {
		if i >= len(scenario.Points) {
			break
		}
		fmt.Fprintf(rg.w, "%-8d %12s %12s %10s\n",
			p.Month,
			FormatCurrency(p.MRR),
			FormatCurrency(scenario.Points[i].MRR),
			liftString(p.MRR, scenario.Points[i].MRR))
	}
	return nil
}

func (rg *ReportGenerator) projectionCSV(baseline, scenario domain.ProjectionResult) error {
	writer := csv.NewWriter(rg.w)
	if err := writer.Write([]string{"Month", "Baseline MRR", "Scenario MRR", "Lift %"}); err != nil {
		return err
	}
	for i, p := range baseline.Points {
		if i >= len(scenario.Points) {
			break
		}
		row := []string{
			strconv.Itoa(p.Month),
			p.MRR.StringFixed(0),
			scenario.Points[i].MRR.StringFixed(0),
			liftString(p.MRR, scenario.Points[i].MRR),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ImpactReport renders each lever's current and target independent impact.
func (rg *ReportGenerator) ImpactReport(current, target []calculation.LeverImpact, format string) error {
	switch format {
	case "console":
		fmt.Fprintln(rg.w, "INDEPENDENT LEVER IMPACT (month 12)")
		fmt.Fprintln(rg.w, strings.Repeat("=", 56))
		fmt.Fprintf(rg.w, "%-14s %10s %8s %10s %8s\n", "Lever", "Current", "Impact", "Target", "Impact")
		fmt.Fprintln(rg.w, strings.Repeat("-", 56))
		for i, li := range current {
			fmt.Fprintf(rg.w, "%-14s %10s %8s %10s %8s\n",
				LeverName(li.Lever),
				li.Value.String(),
				FormatImpact(li.Impact),
				target[i].Value.String(),
				FormatImpact(target[i].Impact))
		}
		return nil
	case "json":
		return rg.writeJSON(struct {
			Current []calculation.LeverImpact `json:"current"`
			Target  []calculation.LeverImpact `json:"target"`
		}{current, target})
	case "csv":
		writer := csv.NewWriter(rg.w)
		if err := writer.Write([]string{"Lever", "Current Value", "Current Impact %", "Target Value", "Target Impact %"}); err != nil {
			return err
		}
		for i, li := range current {
			row := []string{
				string(li.Lever),
				li.Value.String(),
				impactCSV(li.Impact),
				target[i].Value.String(),
				impactCSV(target[i].Impact),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// SweepReport renders the impact at each swept candidate value.
func (rg *ReportGenerator) SweepReport(id domain.LeverID, points []calculation.SweepPoint, format string) error {
	switch format {
	case "console":
		fmt.Fprintf(rg.w, "LEVER SWEEP: %s\n", LeverName(id))
		fmt.Fprintln(rg.w, strings.Repeat("=", 32))
		fmt.Fprintf(rg.w, "%-12s %10s\n", "Value", "Impact")
		fmt.Fprintln(rg.w, strings.Repeat("-", 32))
		for _, p := range points {
			fmt.Fprintf(rg.w, "%-12s %10s\n", p.Value.String(), FormatImpact(p.Impact))
		}
		return nil
	case "json":
		return rg.writeJSON(struct {
			Lever  domain.LeverID           `json:"lever"`
			Points []calculation.SweepPoint `json:"points"`
		}{id, points})
	case "csv":
		writer := csv.NewWriter(rg.w)
		if err := writer.Write([]string{"Value", "Impact %"}); err != nil {
			return err
		}
		for _, p := range points {
			if err := writer.Write([]string{p.Value.String(), impactCSV(p.Impact)}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// InsightReport renders the selected insight as prose plus its ranking.
func (rg *ReportGenerator) InsightReport(insight calculation.Insight, format string) error {
	switch format {
	case "console":
		fmt.Fprintln(rg.w, InsightText(insight))
		fmt.Fprintln(rg.w)
		for i, li := range insight.Ranked {
			fmt.Fprintf(rg.w, "  %d. %-14s %s\n", i+1, LeverName(li.Lever), FormatImpact(li.Impact))
		}
		return nil
	case "json":
		return rg.writeJSON(struct {
			calculation.Insight
			Text string `json:"text"`
		}{insight, InsightText(insight)})
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PlanReport renders the upside-sorted initiative list.
func (rg *ReportGenerator) PlanReport(plan []domain.RankedInitiative, format string) error {
	switch format {
	case "console":
		fmt.Fprintln(rg.w, "30-DAY PLAN (by remaining upside)")
		fmt.Fprintln(rg.w, strings.Repeat("=", 64))
		for i, item := range plan {
			fmt.Fprintf(rg.w, "%d. %s\n", i+1, item.Initiative.Title)
			fmt.Fprintf(rg.w, "   %s\n", item.Initiative.Description)
			fmt.Fprintf(rg.w, "   Remaining upside: %d%% (target %d%%, realized %d%%)\n",
				item.Remaining, item.UpsideAtTarget, item.CurrentImpact)
		}
		return nil
	case "json":
		return rg.writeJSON(plan)
	case "csv":
		writer := csv.NewWriter(rg.w)
		if err := writer.Write([]string{"Initiative", "Lever", "Upside at Target %", "Current Impact %", "Remaining %"}); err != nil {
			return err
		}
		for _, item := range plan {
			row := []string{
				item.Initiative.Title,
				string(item.Initiative.Lever),
				strconv.FormatInt(item.UpsideAtTarget, 10),
				strconv.FormatInt(item.CurrentImpact, 10),
				strconv.FormatInt(item.Remaining, 10),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rg.w, string(data))
	return err
}

// liftString renders the percent change of scenario over baseline, or "n/a"
// when the baseline month is zero.
func liftString(baseline, scenario decimal.Decimal) string {
	if baseline.IsZero() {
		return "n/a"
	}
	pct := scenario.Sub(baseline).Div(baseline).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return fmt.Sprintf("%+d%%", pct)
}

func impactCSV(score domain.ImpactScore) string {
	if !score.Defined {
		return ""
	}
	return strconv.FormatInt(score.Percent, 10)
}
