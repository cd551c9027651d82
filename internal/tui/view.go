package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/growthkit/mrrcalc/internal/tui/tuistyles"
)

// View renders the current scene
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}
	if m.loading {
		return m.renderLoading()
	}

	var content string
	switch m.currentScene {
	case SceneDashboard:
		content = m.dashboardModel.View()
	case SceneLevers:
		content = m.leversModel.View()
	case ScenePlan:
		content = m.planModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = tuistyles.ErrorStyle.Render("Unknown scene")
	}

	return m.renderApp(content)
}

// renderApp wraps scene content with the title and status bars
func (m Model) renderApp(content string) string {
	title := tuistyles.TitleStyle.Render("MRR Growth Calculator")
	breadcrumb := tuistyles.SubtitleStyle.Render(" > " + m.currentScene.String())
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, breadcrumb)

	statusBar := m.renderStatusBar()

	return tuistyles.AppStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			"",
			content,
			"",
			statusBar,
		),
	)
}

// renderStatusBar shows available keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"d", "dashboard"},
		{"l", "levers"},
		{"p", "plan"},
		{"?", "help"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts,
			tuistyles.StatusKeyStyle.Render(s.key)+" "+
				tuistyles.HelpDescStyle.Render(s.desc))
	}

	return tuistyles.StatusBarStyle.Render(strings.Join(parts, "  "))
}

func (m Model) renderLoading() string {
	msg := tuistyles.InfoStyle.Render(fmt.Sprintf("Loading %s...", m.configPath))
	return tuistyles.AppStyle.Render(msg)
}

func (m Model) renderError() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.ErrorStyle.Render("Error"))
	sb.WriteString("\n\n")
	sb.WriteString(m.err.Error())
	sb.WriteString("\n\n")
	sb.WriteString(tuistyles.HelpDescStyle.Render("Press q to quit"))
	return tuistyles.AppStyle.Render(sb.String())
}

// renderHelp shows the static help screen
func (m Model) renderHelp() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{
			"Navigation",
			[][2]string{
				{"d", "Dashboard with projection chart and insight"},
				{"l", "Adjust growth levers"},
				{"p", "30-day plan ranked by remaining upside"},
				{"esc", "Back to previous scene"},
				{"q / ctrl+c", "Quit"},
			},
		},
		{
			"Levers scene",
			[][2]string{
				{"up/down, j/k, tab", "Switch between levers"},
				{"left/right", "Adjust the focused lever"},
				{"t", "Jump the focused lever to its target"},
				{"x", "Clear the focused lever back to baseline"},
				{"R", "Reset all levers to baseline"},
			},
		},
	}

	var sb strings.Builder
	sb.WriteString(tuistyles.TitleStyle.Render("Help"))
	sb.WriteString("\n\n")

	for _, section := range sections {
		sb.WriteString(tuistyles.SubtitleStyle.Render(section.title))
		sb.WriteString("\n")
		for _, binding := range section.keys {
			sb.WriteString(fmt.Sprintf("  %s  %s\n",
				tuistyles.HelpKeyStyle.Render(fmt.Sprintf("%-18s", binding[0])),
				tuistyles.HelpDescStyle.Render(binding[1])))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(tuistyles.HelpDescStyle.Render("Press esc to go back"))
	return sb.String()
}
