package compare

import (
	"fmt"
	"strings"

	"github.com/growthkit/mrrcalc/internal/output"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("GROWTH SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Month-12 MRR",
		numWidth, "Diff",
		numWidth, "Lift"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	base := compSet.BaseResult
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(base.Name+" (base)", nameWidth),
		numWidth, output.FormatCurrency(base.Month12MRR),
		numWidth, "-",
		numWidth, "-"))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth))
		}
	}

	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString("\nINSIGHT\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(output.InsightText(compSet.Insight) + "\n")

	if len(compSet.Plan) > 0 {
		sb.WriteString("\n30-DAY PLAN\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for i, item := range compSet.Plan {
			sb.WriteString(fmt.Sprintf("%d. %s (%d%% remaining)\n",
				i+1, item.Initiative.Title, item.Remaining))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
	}

	return sb.String()
}

// formatRow formats a single alternative scenario row
func (tf *TableFormatter) formatRow(result *ScenarioResult, nameWidth, numWidth int) string {
	diff := output.FormatCurrency(result.MRRDiffFromBase.Abs())
	if result.MRRDiffFromBase.IsPositive() {
		diff = "+" + diff
	} else if result.MRRDiffFromBase.IsNegative() {
		diff = "-" + diff
	}

	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(result.Name, nameWidth),
		numWidth, output.FormatCurrency(result.Month12MRR),
		numWidth, diff,
		numWidth, output.FormatImpact(result.LiftPctFromBase))
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", output.FormatCurrency(compSet.BaseResult.Month12MRR)))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.Name, output.FormatImpact(alt.LiftPctFromBase)))
	}

	return sb.String()
}
