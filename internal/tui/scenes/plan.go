package scenes

import (
	"fmt"
	"strings"

	"github.com/growthkit/mrrcalc/internal/domain"
	"github.com/growthkit/mrrcalc/internal/tui/tuistyles"
)

// PlanModel renders the upside-sorted 30-day plan. Pure display; the root
// model pushes a freshly ranked plan after every lever change.
type PlanModel struct {
	plan   []domain.RankedInitiative
	width  int
	height int
}

// NewPlanModel creates an empty plan scene.
func NewPlanModel() *PlanModel {
	return &PlanModel{width: 80, height: 24}
}

// SetSize updates the scene dimensions.
func (m *PlanModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetPlan replaces the displayed ranking.
func (m *PlanModel) SetPlan(plan []domain.RankedInitiative) {
	m.plan = plan
}

// View renders the plan list.
func (m *PlanModel) View() string {
	if len(m.plan) == 0 {
		return tuistyles.InfoStyle.Render("No plan computed yet")
	}

	var sb strings.Builder
	sb.WriteString(tuistyles.TitleStyle.Render("Your 30-day plan"))
	sb.WriteString("\n")
	sb.WriteString(tuistyles.SubtitleStyle.Render("Ordered by remaining unrealized upside"))
	sb.WriteString("\n\n")

	for i, item := range m.plan {
		title := fmt.Sprintf("%d. %s", i+1, item.Initiative.Title)
		sb.WriteString(tuistyles.SelectedItemStyle.Render(title))
		sb.WriteString("\n")
		sb.WriteString(tuistyles.UnselectedItemStyle.Render("   " + item.Initiative.Description))
		sb.WriteString("\n")

		upside := fmt.Sprintf("   Remaining upside: %d%%", item.Remaining)
		if item.Remaining == 0 {
			upside += "  (realized)"
		} else {
			upside += fmt.Sprintf("  (target %d%%, realized %d%%)", item.UpsideAtTarget, item.CurrentImpact)
		}
		sb.WriteString(tuistyles.SubtitleStyle.Render(upside))
		sb.WriteString("\n\n")
	}

	return tuistyles.BorderStyle.Width(min(m.width-4, 78)).Render(strings.TrimRight(sb.String(), "\n"))
}
