// Package tuimsg holds the messages scenes send back to the root model.
// They live in their own package so scenes never import the root tui
// package.
package tuimsg

import (
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// LeverChangedMsg signals a lever override has been set or adjusted
type LeverChangedMsg struct {
	Lever domain.LeverID
	Value decimal.Decimal
}

// LeverClearedMsg signals a lever override has been removed
type LeverClearedMsg struct {
	Lever domain.LeverID
}

// ResetMsg signals all overrides should be cleared
type ResetMsg struct{}
