package domain

import (
	"github.com/shopspring/decimal"
)

// Assumptions holds the baseline business and funnel parameters the
// simulation runs from. All rates are percentages (5 = 5%); ARPU is in
// thousands of currency units per month.
type Assumptions struct {
	Customers      decimal.Decimal `yaml:"customers" json:"customers"`
	ARPU           decimal.Decimal `yaml:"arpu" json:"arpu"`
	ChurnRate      decimal.Decimal `yaml:"churn_rate" json:"churnRate"`
	ActivationRate decimal.Decimal `yaml:"activation_rate" json:"activationRate"`
	LeadsPerMonth  decimal.Decimal `yaml:"leads_per_month" json:"leadsPerMonth"`
	DemoRate       decimal.Decimal `yaml:"demo_rate" json:"demoRate"`
	TrialRate      decimal.Decimal `yaml:"trial_rate" json:"trialRate"`
	PaidRate       decimal.Decimal `yaml:"paid_rate" json:"paidRate"`
	LeadGrowthRate decimal.Decimal `yaml:"lead_growth_rate" json:"leadGrowthRate"`
}

// DefaultAssumptions returns the assumption set a fresh session starts from.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Customers:      decimal.NewFromInt(15),
		ARPU:           decimal.NewFromInt(6),
		ChurnRate:      decimal.NewFromInt(5),
		ActivationRate: decimal.NewFromInt(35),
		LeadsPerMonth:  decimal.NewFromInt(50),
		DemoRate:       decimal.NewFromInt(45),
		TrialRate:      decimal.NewFromInt(65),
		PaidRate:       decimal.NewFromInt(55),
		LeadGrowthRate: decimal.NewFromInt(8),
	}
}

// LeverValue returns the baseline value of the field a lever overrides.
func (a Assumptions) LeverValue(id LeverID) decimal.Decimal {
	switch id {
	case LeverRetention:
		return a.ChurnRate
	case LeverMonetization:
		return a.ARPU
	case LeverActivation:
		return a.ActivationRate
	}
	return decimal.Zero
}

// Overrides carries the per-lever override values. A nil field means the
// lever is unset and the baseline value applies; this is distinct from an
// override that happens to equal the baseline.
type Overrides struct {
	Churn      *decimal.Decimal `yaml:"churn,omitempty" json:"churn,omitempty"`
	ARPU       *decimal.Decimal `yaml:"arpu,omitempty" json:"arpu,omitempty"`
	Activation *decimal.Decimal `yaml:"activation,omitempty" json:"activation,omitempty"`
}

// Get returns the override for a lever, or nil when unset.
func (o Overrides) Get(id LeverID) *decimal.Decimal {
	switch id {
	case LeverRetention:
		return o.Churn
	case LeverMonetization:
		return o.ARPU
	case LeverActivation:
		return o.Activation
	}
	return nil
}

// Resolve returns the effective value for a lever: the override when set,
// otherwise the baseline field.
func (o Overrides) Resolve(id LeverID, a Assumptions) decimal.Decimal {
	if v := o.Get(id); v != nil {
		return *v
	}
	return a.LeverValue(id)
}

// WithLever returns a copy of the overrides with one lever set to value.
func (o Overrides) WithLever(id LeverID, value decimal.Decimal) Overrides {
	v := value
	switch id {
	case LeverRetention:
		o.Churn = &v
	case LeverMonetization:
		o.ARPU = &v
	case LeverActivation:
		o.Activation = &v
	}
	return o
}

// Scenario is the session's mutable state: the baseline assumption set plus
// the current override per lever. The core components never mutate it; the
// input layer does, through the methods below.
type Scenario struct {
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Overrides   Overrides   `yaml:"overrides" json:"overrides"`
}

// NewScenario creates a scenario with all overrides unset.
func NewScenario(a Assumptions) *Scenario {
	return &Scenario{Assumptions: a}
}

// SetOverride sets a lever's override value.
func (s *Scenario) SetOverride(id LeverID, value decimal.Decimal) {
	s.Overrides = s.Overrides.WithLever(id, value)
}

// ClearOverride returns a lever to the unset state.
func (s *Scenario) ClearOverride(id LeverID) {
	switch id {
	case LeverRetention:
		s.Overrides.Churn = nil
	case LeverMonetization:
		s.Overrides.ARPU = nil
	case LeverActivation:
		s.Overrides.Activation = nil
	}
}

// ResetOverrides clears all three levers.
func (s *Scenario) ResetOverrides() {
	s.Overrides = Overrides{}
}

// SetBaseline edits a baseline assumption field. When the field is one a
// lever overrides, the lever's override is cleared so a direct edit never
// coexists with a stale override.
func (s *Scenario) SetBaseline(id LeverID, value decimal.Decimal) {
	switch id {
	case LeverRetention:
		s.Assumptions.ChurnRate = value
	case LeverMonetization:
		s.Assumptions.ARPU = value
	case LeverActivation:
		s.Assumptions.ActivationRate = value
	}
	s.ClearOverride(id)
}
