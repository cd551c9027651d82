package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/growthkit/mrrcalc/internal/domain"
)

// Configuration is the top-level document loaded from an input file: the
// baseline assumption set, optional lever overrides, and the projection
// horizon used by the CLI.
type Configuration struct {
	Assumptions   domain.Assumptions `yaml:"assumptions" json:"assumptions"`
	Overrides     domain.Overrides   `yaml:"overrides" json:"overrides"`
	HorizonMonths int                `yaml:"horizon_months" json:"horizonMonths"`
}

// DefaultConfiguration returns the configuration a session starts from when
// no input file is given.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Assumptions:   domain.DefaultAssumptions(),
		HorizonMonths: 18,
	}
}

// Scenario converts the configuration into the session's mutable state.
func (c *Configuration) Scenario() *domain.Scenario {
	return &domain.Scenario{
		Assumptions: c.Assumptions,
		Overrides:   c.Overrides,
	}
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Missing assumption
// fields take their defaults, so a file only needs the values it changes.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	if err := ip.validateOverrides(&config.Overrides); err != nil {
		return fmt.Errorf("overrides validation failed: %w", err)
	}
	if config.HorizonMonths < 0 || config.HorizonMonths > 60 {
		return fmt.Errorf("horizon months must be between 0 and 60")
	}
	return nil
}

// validateAssumptions validates the baseline assumption set
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.Customers.LessThan(one) {
		return fmt.Errorf("customers must be at least 1")
	}
	if a.ARPU.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("arpu must be positive")
	}
	if a.LeadsPerMonth.LessThan(decimal.Zero) {
		return fmt.Errorf("leads per month cannot be negative")
	}
	if a.ActivationRate.LessThanOrEqual(decimal.Zero) || a.ActivationRate.GreaterThan(hundred) {
		return fmt.Errorf("activation rate must be between 0 (exclusive) and 100")
	}
	if a.LeadGrowthRate.LessThan(hundred.Neg()) {
		return fmt.Errorf("lead growth rate cannot be less than -100%%")
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"churn rate", a.ChurnRate},
		{"demo rate", a.DemoRate},
		{"trial rate", a.TrialRate},
		{"paid rate", a.PaidRate},
	}
	for _, r := range rates {
		if r.value.LessThan(decimal.Zero) || r.value.GreaterThan(hundred) {
			return fmt.Errorf("%s must be between 0 and 100", r.name)
		}
	}

	return nil
}

// validateOverrides checks each set override against its lever's valid range.
func (ip *InputParser) validateOverrides(ov *domain.Overrides) error {
	for _, lever := range domain.Levers() {
		v := ov.Get(lever.ID)
		if v == nil {
			continue
		}
		if v.LessThan(lever.Min) || v.GreaterThan(lever.Max) {
			return fmt.Errorf("%s override %s is outside the valid range [%s, %s]",
				lever.ID, v.String(), lever.Min.String(), lever.Max.String())
		}
	}
	return nil
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)
