package scenes

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
	"github.com/growthkit/mrrcalc/internal/output"
	"github.com/growthkit/mrrcalc/internal/tui/components"
	"github.com/growthkit/mrrcalc/internal/tui/tuistyles"
)

// DashboardModel is the main scene: the projection chart, the headline
// metric cards, and the current insight. It holds display data only; the
// root model recomputes and pushes it on every change.
type DashboardModel struct {
	baseline domain.ProjectionResult
	scenario domain.ProjectionResult
	lift     domain.ImpactScore
	insight  string
	width    int
	height   int
}

// NewDashboardModel creates an empty dashboard.
func NewDashboardModel() *DashboardModel {
	return &DashboardModel{width: 80, height: 24}
}

// SetSize updates the scene dimensions.
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the displayed results.
func (m *DashboardModel) SetData(baseline, scenario domain.ProjectionResult, lift domain.ImpactScore, insight string) {
	m.baseline = baseline
	m.scenario = scenario
	m.lift = lift
	m.insight = insight
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if len(m.baseline.Points) == 0 {
		return tuistyles.InfoStyle.Render("Waiting for the first projection...")
	}

	chart := components.NewMRRChart("MRR projection").
		WithSize(min(m.width-8, 70), 10).
		WithLabels(monthLabels(m.baseline)).
		AddSeries("Baseline", mrrValues(m.baseline), tuistyles.ColorChartLine1).
		AddSeries("Scenario", mrrValues(m.scenario), tuistyles.ColorChartLine2)

	cards := []*components.MetricCard{
		components.NewMetricCard("MRR in 12 months",
			output.FormatCurrency(m.scenario.MRRAt(12))).
			WithImpactTrend(m.lift).
			WithDescription("vs " + output.FormatCurrency(m.baseline.MRRAt(12)) + " baseline"),
		components.NewMetricCard("MRR in 18 months",
			output.FormatCurrency(m.scenario.MRRAt(18))).
			WithDescription("vs " + output.FormatCurrency(m.baseline.MRRAt(18)) + " baseline"),
		components.NewMetricCard("Starting MRR",
			output.FormatCurrency(m.baseline.MRRAt(0))),
	}

	insightStyle := tuistyles.BorderStyle.Width(min(m.width-4, 78))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		chart.Render(),
		"",
		components.MetricGrid(cards, 3),
		"",
		insightStyle.Render(m.insight),
	)
}

// mrrValues extracts the MRR column of a series.
func mrrValues(r domain.ProjectionResult) []decimal.Decimal {
	values := make([]decimal.Decimal, 0, len(r.Points))
	for _, p := range r.Points {
		values = append(values, p.MRR)
	}
	return values
}

func monthLabels(r domain.ProjectionResult) []string {
	labels := make([]string, 0, len(r.Points))
	for _, p := range r.Points {
		labels = append(labels, "m"+strconv.Itoa(p.Month))
	}
	return labels
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
