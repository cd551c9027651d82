package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// SweepPoint is one evaluated candidate in a lever sweep.
type SweepPoint struct {
	Value  decimal.Decimal    `json:"value"`
	Impact domain.ImpactScore `json:"impact"`
}

// SweepLever evaluates the independent impact at evenly spaced candidate
// values across the lever's valid range, endpoints included. Steps below
// two collapse to the lever's suggested target.
func (e *Engine) SweepLever(a domain.Assumptions, id domain.LeverID, steps int) []SweepPoint {
	lever, ok := domain.LeverByID(id)
	if !ok {
		return nil
	}

	values := sweepValues(lever, steps)
	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		points = append(points, SweepPoint{
			Value:  v,
			Impact: e.IndependentImpact(a, id, v),
		})
	}
	return points
}

func sweepValues(lever domain.Lever, steps int) []decimal.Decimal {
	if steps <= 1 {
		return []decimal.Decimal{lever.Target}
	}

	stepSize := lever.Max.Sub(lever.Min).Div(decimal.NewFromInt(int64(steps - 1)))
	values := make([]decimal.Decimal, 0, steps)
	for i := 0; i < steps; i++ {
		values = append(values, lever.Min.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))))
	}
	return values
}
