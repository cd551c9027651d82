package config

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growthkit/mrrcalc/internal/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.True(t, cfg.Assumptions.Customers.Equal(dec(15)))
	assert.True(t, cfg.Assumptions.ARPU.Equal(dec(6)))
	assert.Equal(t, 18, cfg.HorizonMonths)
	assert.Nil(t, cfg.Overrides.Churn, "Fresh configuration has no overrides")
	assert.Nil(t, cfg.Overrides.ARPU)
	assert.Nil(t, cfg.Overrides.Activation)

	require.NoError(t, NewInputParser().ValidateConfiguration(cfg), "Defaults must validate")
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	cfg, err := parser.LoadFromFile(filepath.Join("testdata", "growth.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Assumptions.Customers.Equal(dec(15)))
	assert.True(t, cfg.Assumptions.ChurnRate.Equal(dec(5)))
	assert.True(t, cfg.Assumptions.LeadGrowthRate.Equal(dec(8)))
	assert.Equal(t, 18, cfg.HorizonMonths)

	require.NotNil(t, cfg.Overrides.Churn)
	assert.True(t, cfg.Overrides.Churn.Equal(dec(2)))
	require.NotNil(t, cfg.Overrides.ARPU)
	assert.True(t, cfg.Overrides.ARPU.Equal(dec(9)))
	assert.Nil(t, cfg.Overrides.Activation, "Absent override stays unset")
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	parser := NewInputParser()

	cfg, err := parser.LoadFromFile(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Assumptions.Customers.Equal(dec(40)))
	assert.Equal(t, 12, cfg.HorizonMonths)
	assert.Nil(t, cfg.Overrides.Churn)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "no_such_file.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidOverride(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "invalid_override.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the valid range")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr string
	}{
		{
			name:    "zero customers",
			mutate:  func(c *Configuration) { c.Assumptions.Customers = decimal.Zero },
			wantErr: "customers must be at least 1",
		},
		{
			name:    "negative customers",
			mutate:  func(c *Configuration) { c.Assumptions.Customers = dec(-1) },
			wantErr: "customers must be at least 1",
		},
		{
			name:    "zero arpu",
			mutate:  func(c *Configuration) { c.Assumptions.ARPU = decimal.Zero },
			wantErr: "arpu must be positive",
		},
		{
			name:    "zero activation",
			mutate:  func(c *Configuration) { c.Assumptions.ActivationRate = decimal.Zero },
			wantErr: "activation rate",
		},
		{
			name:    "churn above 100",
			mutate:  func(c *Configuration) { c.Assumptions.ChurnRate = dec(120) },
			wantErr: "churn rate must be between 0 and 100",
		},
		{
			name:    "trial rate above 100",
			mutate:  func(c *Configuration) { c.Assumptions.TrialRate = dec(101) },
			wantErr: "trial rate must be between 0 and 100",
		},
		{
			name:    "lead growth below -100",
			mutate:  func(c *Configuration) { c.Assumptions.LeadGrowthRate = dec(-150) },
			wantErr: "lead growth rate",
		},
		{
			name:    "horizon above cap",
			mutate:  func(c *Configuration) { c.HorizonMonths = 120 },
			wantErr: "horizon months",
		},
		{
			name:    "override below lever minimum",
			mutate:  func(c *Configuration) { c.Overrides.ARPU = decPtr(0) },
			wantErr: "outside the valid range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfiguration_Scenario(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Overrides = domain.Overrides{Churn: decPtr(2)}

	s := cfg.Scenario()
	require.NotNil(t, s)
	assert.True(t, s.Assumptions.ARPU.Equal(dec(6)))
	require.NotNil(t, s.Overrides.Churn)
	assert.True(t, s.Overrides.Churn.Equal(dec(2)))
}
