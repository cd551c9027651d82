package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
	"github.com/growthkit/mrrcalc/internal/tui/tuistyles"
)

// LeverSlider displays one growth lever with a visual slider. It tracks the
// unset-override state explicitly: an untouched slider shows the baseline
// value and reports no override, which is not the same as an override that
// equals the baseline.
type LeverSlider struct {
	Lever     domain.Lever
	Baseline  decimal.Decimal
	Value     decimal.Decimal
	IsSet     bool
	Width     int
	IsFocused bool
}

// NewLeverSlider creates a slider at the baseline value with no override.
func NewLeverSlider(lever domain.Lever, baseline decimal.Decimal) *LeverSlider {
	return &LeverSlider{
		Lever:    lever,
		Baseline: baseline,
		Value:    baseline,
		Width:    30,
	}
}

// SetFocused sets the focus state
func (s *LeverSlider) SetFocused(focused bool) {
	s.IsFocused = focused
}

// SetOverride sets the override value, clamped to the lever range.
func (s *LeverSlider) SetOverride(v decimal.Decimal) {
	s.Value = s.Lever.Clamp(v)
	s.IsSet = true
}

// Clear removes the override and returns the slider to the baseline.
func (s *LeverSlider) Clear() {
	s.Value = s.Baseline
	s.IsSet = false
}

// Increment moves the value up one step and marks the override set.
func (s *LeverSlider) Increment() {
	s.SetOverride(s.Value.Add(s.Lever.Step))
}

// Decrement moves the value down one step and marks the override set.
func (s *LeverSlider) Decrement() {
	s.SetOverride(s.Value.Sub(s.Lever.Step))
}

// JumpToTarget sets the override to the lever's suggested target.
func (s *LeverSlider) JumpToTarget() {
	s.SetOverride(s.Lever.Target)
}

// Percentage returns the value's position in the lever range as [0, 1].
func (s *LeverSlider) Percentage() float64 {
	span := s.Lever.Max.Sub(s.Lever.Min)
	if span.IsZero() {
		return 0
	}
	pos, _ := s.Value.Sub(s.Lever.Min).Div(span).Float64()
	return pos
}

// Render returns the styled slider block.
func (s *LeverSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(s.Lever.Label))
	content.WriteString("\n")

	valueStr := s.Value.String() + s.Lever.Unit
	if !s.IsSet {
		valueStr += "  (baseline)"
	} else if !s.Value.Equal(s.Baseline) {
		valueStr += fmt.Sprintf("  (baseline %s%s)", s.Baseline.String(), s.Lever.Unit)
	}
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(valueStyle.Render(valueStr))
	content.WriteString("\n")

	content.WriteString(s.renderBar(s.Width))

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s%s  to  %s%s   target %s%s",
		s.Lever.Min.String(), s.Lever.Unit,
		s.Lever.Max.String(), s.Lever.Unit,
		s.Lever.Target.String(), s.Lever.Unit)))

	if s.Lever.Description != "" {
		descStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)
		content.WriteString("\n")
		content.WriteString(descStyle.Render(s.Lever.Description))
	}

	if s.IsFocused {
		hintStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorInfo).Italic(true)
		content.WriteString("\n")
		content.WriteString(hintStyle.Render("← → adjust • t target • x clear • ↑↓ switch lever"))
	}

	return content.String()
}

// RenderCompact returns a single-line version for the dashboard.
func (s *LeverSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	value := s.Value.String() + s.Lever.Unit
	if !s.IsSet {
		value += " (baseline)"
	}

	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(s.Lever.Label+":"),
		valueStyle.Render(value),
		s.renderBar(12))
}

// renderBar draws the slider track with the thumb at the value position.
func (s *LeverSlider) renderBar(width int) string {
	filled := int(float64(width)*s.Percentage() + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled >= width {
		filled = width - 1
	}

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle
	if s.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
