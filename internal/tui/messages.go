package tui

import (
	"github.com/growthkit/mrrcalc/internal/config"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneDashboard Scene = iota
	SceneLevers
	ScenePlan
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneDashboard:
		return "Dashboard"
	case SceneLevers:
		return "Levers"
	case ScenePlan:
		return "Plan"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *config.Configuration
}
