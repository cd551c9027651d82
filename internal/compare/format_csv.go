package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Month-12 MRR",
		"MRR Diff from Base",
		"Lift % from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a scenario result as a CSV row
func (cf *CSVFormatter) formatRow(result *ScenarioResult, scenarioType string) []string {
	lift := ""
	if result.LiftPctFromBase.Defined {
		lift = strconv.FormatInt(result.LiftPctFromBase.Percent, 10)
	}
	return []string{
		result.Name,
		scenarioType,
		result.Month12MRR.StringFixed(0),
		result.MRRDiffFromBase.StringFixed(0),
		lift,
	}
}
