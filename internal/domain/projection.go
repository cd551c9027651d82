package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionPoint is one sampled month of a simulation run.
type ProjectionPoint struct {
	Month     int             `json:"month"`
	Customers decimal.Decimal `json:"customers"`
	MRR       decimal.Decimal `json:"mrr"`
}

// ProjectionResult is the ordered series a single run produces. Derived,
// never persisted; recomputed on every input change.
type ProjectionResult struct {
	Points []ProjectionPoint `json:"points"`
}

// MRRAt returns the MRR sample at the given month, or zero when the month
// was not sampled.
func (r ProjectionResult) MRRAt(month int) decimal.Decimal {
	for _, p := range r.Points {
		if p.Month == month {
			return p.MRR
		}
	}
	return decimal.Zero
}

// HorizonPoints is the fixed set of display horizons.
func HorizonPoints() []int {
	return []int{0, 3, 6, 9, 12, 15, 18}
}

// ImpactScore is a signed percentage MRR change from moving exactly one
// lever, rounded to the nearest integer. Defined is false when the baseline
// MRR was zero and no percentage exists; callers rank that as zero impact.
type ImpactScore struct {
	Percent int64 `json:"percent"`
	Defined bool  `json:"defined"`
}

// Impact builds a defined score.
func Impact(percent int64) ImpactScore {
	return ImpactScore{Percent: percent, Defined: true}
}

// UndefinedImpact is the sentinel for a degenerate (zero-MRR) baseline.
func UndefinedImpact() ImpactScore {
	return ImpactScore{}
}

// Abs returns the magnitude used for ranking. Undefined scores rank as zero.
func (s ImpactScore) Abs() int64 {
	if !s.Defined {
		return 0
	}
	if s.Percent < 0 {
		return -s.Percent
	}
	return s.Percent
}

// IsZero reports whether the score contributes nothing to a ranking.
func (s ImpactScore) IsZero() bool {
	return !s.Defined || s.Percent == 0
}
