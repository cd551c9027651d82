package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/growthkit/mrrcalc/internal/domain"
)

const (
	// ImpactHorizonMonths is the horizon all independent-impact
	// comparisons are measured at.
	ImpactHorizonMonths = 12

	// MaxHorizonMonths caps the simulation loop. Display series never go
	// past month 18; the cap keeps pathological growth rates from
	// compounding into meaningless numbers.
	MaxHorizonMonths = 60
)

var (
	one      = decimal.NewFromInt(1)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Engine runs the month-by-month growth simulation and the comparative
// what-if analyses built on top of it. All methods are pure given the
// arguments; the engine itself only carries tuning constants.
type Engine struct {
	// ActivationWeight is the share of new-customer variance the model
	// attributes to activation; the remainder is held constant. A policy
	// constant, not a measured quantity.
	ActivationWeight decimal.Decimal

	// PairDominanceFactor scales the activation impact when deciding
	// whether retention plus monetization dominate it. Policy constant.
	PairDominanceFactor decimal.Decimal

	Logger Logger
}

// NewEngine creates an engine with the default tuning constants.
func NewEngine() *Engine {
	return &Engine{
		ActivationWeight:    decimal.NewFromFloat(0.4),
		PairDominanceFactor: decimal.NewFromFloat(1.5),
		Logger:              NopLogger{},
	}
}

// SetLogger replaces the engine logger. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project simulates the customer base month by month under the baseline
// assumptions with the given overrides applied, and returns the MRR at the
// horizon in whole currency units.
//
// Each month: leads compound from month zero at the lead growth rate,
// convert through the demo/trial/paid funnel, and are scaled by the blended
// activation ratio; the existing base churns at the (possibly overridden)
// churn rate. Retained customers clamp at zero when churn exceeds 100%.
func (e *Engine) Project(a domain.Assumptions, ov domain.Overrides, horizon int) decimal.Decimal {
	customers := e.customersAt(a, ov, horizon)
	arpu := ov.Resolve(domain.LeverMonetization, a)
	return customers.Mul(arpu).Mul(thousand).Round(0)
}

// ProjectSeries samples one simulation run at the given months and returns
// the ordered (month, customers, mrr) series.
func (e *Engine) ProjectSeries(a domain.Assumptions, ov domain.Overrides, months []int) domain.ProjectionResult {
	arpu := ov.Resolve(domain.LeverMonetization, a)

	wanted := make(map[int]bool, len(months))
	maxMonth := 0
	for _, m := range months {
		m = clampHorizon(m)
		wanted[m] = true
		if m > maxMonth {
			maxMonth = m
		}
	}

	var result domain.ProjectionResult
	sample := func(month int, customers decimal.Decimal) {
		if wanted[month] {
			result.Points = append(result.Points, domain.ProjectionPoint{
				Month:     month,
				Customers: customers,
				MRR:       customers.Mul(arpu).Mul(thousand).Round(0),
			})
		}
	}

	customers := a.Customers
	sample(0, customers)
	for m := 1; m <= maxMonth; m++ {
		customers = e.advanceMonth(a, ov, customers, m)
		sample(m, customers)
	}
	return result
}

// customersAt runs the recurrence to the horizon and returns the customer
// count. Horizons are clamped to [0, MaxHorizonMonths].
func (e *Engine) customersAt(a domain.Assumptions, ov domain.Overrides, horizon int) decimal.Decimal {
	clamped := clampHorizon(horizon)
	if clamped != horizon {
		e.Logger.Warnf("horizon %d clamped to %d", horizon, clamped)
	}

	customers := a.Customers
	for m := 1; m <= clamped; m++ {
		customers = e.advanceMonth(a, ov, customers, m)
	}
	return customers
}

// advanceMonth applies one month of the recurrence to the customer count.
func (e *Engine) advanceMonth(a domain.Assumptions, ov domain.Overrides, customers decimal.Decimal, month int) decimal.Decimal {
	churn := ov.Resolve(domain.LeverRetention, a)

	// Lead volume compounds from month zero, recomputed fresh each month.
	growth := one.Add(a.LeadGrowthRate.Div(hundred))
	leads := a.LeadsPerMonth.Mul(growth.Pow(decimal.NewFromInt(int64(month))))

	newCustomers := leads.
		Mul(a.DemoRate.Div(hundred)).
		Mul(a.TrialRate.Div(hundred)).
		Mul(a.PaidRate.Div(hundred)).
		Mul(e.activationBlend(a, ov))

	retained := customers.Mul(one.Sub(churn.Div(hundred)))
	if retained.IsNegative() {
		retained = decimal.Zero
	}

	return retained.Add(newCustomers)
}

// activationBlend scales new-customer volume by the ratio of the overridden
// activation rate to the baseline rate, weighted by ActivationWeight.
func (e *Engine) activationBlend(a domain.Assumptions, ov domain.Overrides) decimal.Decimal {
	// A zero baseline rate has no defined ratio; treat activation as
	// neutral rather than divide by zero. Config validation rejects the
	// value before it gets here.
	if a.ActivationRate.IsZero() {
		return one
	}
	ratio := ov.Resolve(domain.LeverActivation, a).Div(a.ActivationRate)
	return ratio.Mul(e.ActivationWeight).Add(one.Sub(e.ActivationWeight))
}

func clampHorizon(h int) int {
	if h < 0 {
		return 0
	}
	if h > MaxHorizonMonths {
		return MaxHorizonMonths
	}
	return h
}
