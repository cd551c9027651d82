package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/growthkit/mrrcalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboardModel.SetSize(msg.Width, msg.Height)
		m.leversModel.SetSize(msg.Width, msg.Height)
		m.planModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m.scenario = msg.Config.Scenario()
		m.leversModel.Sync(m.scenario)
		m.recompute()
		m.loading = false
		m.err = nil
		return m, nil

	case tuimsg.LeverChangedMsg:
		m.scenario.SetOverride(msg.Lever, msg.Value)
		m.recompute()
		return m, nil

	case tuimsg.LeverClearedMsg:
		m.scenario.ClearOverride(msg.Lever)
		m.recompute()
		return m, nil

	case tuimsg.ResetMsg:
		m.scenario.ResetOverrides()
		m.recompute()
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			m.previousScene = m.currentScene
			m.currentScene = SceneHelp
		}
		return m, nil

	case "esc":
		if m.currentScene == SceneHelp {
			m.currentScene = m.previousScene
			return m, nil
		}
		if m.currentScene != SceneDashboard {
			m.previousScene = m.currentScene
			m.currentScene = SceneDashboard
		}
		return m, nil

	case "d":
		m.previousScene = m.currentScene
		m.currentScene = SceneDashboard
		return m, nil

	case "l":
		m.previousScene = m.currentScene
		m.currentScene = SceneLevers
		return m, nil

	case "p":
		m.previousScene = m.currentScene
		m.currentScene = ScenePlan
		return m, nil
	}

	// Scene-specific input
	if m.currentScene == SceneLevers {
		var cmd tea.Cmd
		m.leversModel, cmd = m.leversModel.Update(msg)
		return m, cmd
	}

	return m, nil
}
