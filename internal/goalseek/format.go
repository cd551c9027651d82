package goalseek

import (
	"fmt"
	"strings"

	"github.com/growthkit/mrrcalc/internal/output"
)

// FormatResult renders a goal-seek result for the console.
func FormatResult(result *SeekResult) string {
	var sb strings.Builder

	sb.WriteString("GOAL SEEK\n")
	sb.WriteString(strings.Repeat("=", 56) + "\n")
	sb.WriteString(fmt.Sprintf("Lever:          %s\n", output.LeverName(result.Request.Lever)))
	sb.WriteString(fmt.Sprintf("Target MRR:     %s\n", output.FormatFullCurrency(result.Request.TargetMRR)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Required value: %s\n", result.OptimalValue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Achieved MRR:   %s\n", output.FormatFullCurrency(result.AchievedMRR)))
	sb.WriteString(fmt.Sprintf("Impact:         %s vs baseline\n", output.FormatImpact(result.Impact)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s after %d iterations.\n", result.ConvergenceInfo, result.Iterations))

	return sb.String()
}
