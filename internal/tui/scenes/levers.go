package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/growthkit/mrrcalc/internal/domain"
	"github.com/growthkit/mrrcalc/internal/tui/components"
	"github.com/growthkit/mrrcalc/internal/tui/tuimsg"
	"github.com/growthkit/mrrcalc/internal/tui/tuistyles"
)

// LeversModel is the lever-editing scene: one slider per growth lever, with
// focus moving between them.
type LeversModel struct {
	sliders []*components.LeverSlider
	focus   int
	width   int
	height  int
}

// NewLeversModel builds sliders from the scenario's baselines and overrides.
func NewLeversModel(scenario *domain.Scenario) *LeversModel {
	m := &LeversModel{width: 80, height: 24}
	m.Sync(scenario)
	return m
}

// Sync rebuilds the sliders from the scenario state, keeping focus.
func (m *LeversModel) Sync(scenario *domain.Scenario) {
	sliders := make([]*components.LeverSlider, 0, 3)
	for _, lever := range domain.Levers() {
		slider := components.NewLeverSlider(lever, scenario.Assumptions.LeverValue(lever.ID))
		if v := scenario.Overrides.Get(lever.ID); v != nil {
			slider.SetOverride(*v)
		}
		sliders = append(sliders, slider)
	}
	m.sliders = sliders
	if m.focus >= len(sliders) {
		m.focus = 0
	}
	m.applyFocus()
}

// SetSize updates the scene dimensions.
func (m *LeversModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the lever the focused slider controls.
func (m *LeversModel) Focused() domain.LeverID {
	return m.sliders[m.focus].Lever.ID
}

// Update handles key input for the scene.
func (m *LeversModel) Update(msg tea.Msg) (*LeversModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	slider := m.sliders[m.focus]

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.focus = (m.focus + len(m.sliders) - 1) % len(m.sliders)
		m.applyFocus()

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.focus = (m.focus + 1) % len(m.sliders)
		m.applyFocus()

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left"))):
		slider.Decrement()
		return m, changedCmd(slider)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right"))):
		slider.Increment()
		return m, changedCmd(slider)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("t"))):
		slider.JumpToTarget()
		return m, changedCmd(slider)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("x"))):
		slider.Clear()
		lever := slider.Lever.ID
		return m, func() tea.Msg {
			return tuimsg.LeverClearedMsg{Lever: lever}
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("R"))):
		for _, s := range m.sliders {
			s.Clear()
		}
		return m, func() tea.Msg {
			return tuimsg.ResetMsg{}
		}
	}

	return m, nil
}

// View renders the slider stack.
func (m *LeversModel) View() string {
	blocks := make([]string, 0, len(m.sliders))
	for _, slider := range m.sliders {
		style := tuistyles.BorderStyle
		if slider.IsFocused {
			style = tuistyles.ActiveBorderStyle
		}
		blocks = append(blocks, style.Render(slider.Render()))
	}
	return strings.Join(blocks, "\n")
}

func (m *LeversModel) applyFocus() {
	for i, slider := range m.sliders {
		slider.SetFocused(i == m.focus)
	}
}

func changedCmd(slider *components.LeverSlider) tea.Cmd {
	lever := slider.Lever.ID
	value := slider.Value
	return func() tea.Msg {
		return tuimsg.LeverChangedMsg{Lever: lever, Value: value}
	}
}
