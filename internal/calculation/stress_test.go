package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

func TestResolveStressOverridesNil(t *testing.T) {
	overrides := resolveStressOverrides(nil)
	assert.Empty(t, overrides.returns)
	assert.Empty(t, overrides.inflation)
}

func TestResolveFinancialCrisis(t *testing.T) {
	scenario, ok := domain.PresetStressScenario(domain.ScenarioFinancialCrisis)
	require.True(t, ok)

	overrides := resolveStressOverrides(scenario)
	require.Len(t, overrides.returns, 3)
	assert.Empty(t, overrides.inflation)

	assert.True(t, overrides.returns[1].Equal(decimal.NewFromFloat(-0.40)))
	assert.True(t, overrides.returns[2].Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, overrides.returns[3].Equal(decimal.NewFromFloat(0.15)))
}

func TestResolveHighInflation(t *testing.T) {
	scenario, ok := domain.PresetStressScenario(domain.ScenarioHighInflation)
	require.True(t, ok)

	overrides := resolveStressOverrides(scenario)
	assert.Empty(t, overrides.returns)
	require.Len(t, overrides.inflation, 5)
	for year := 1; year <= 5; year++ {
		assert.True(t, overrides.inflation[year].Equal(decimal.NewFromFloat(0.06)), "year %d", year)
	}
}

func TestResolveLostDecade(t *testing.T) {
	scenario, ok := domain.PresetStressScenario(domain.ScenarioLostDecade)
	require.True(t, ok)

	overrides := resolveStressOverrides(scenario)
	require.Len(t, overrides.returns, 10)
	for year := 1; year <= 10; year++ {
		assert.True(t, overrides.returns[year].Equal(decimal.NewFromFloat(0.005)), "year %d", year)
	}
}

func TestFinancialCrisisForcesDeterministicReturns(t *testing.T) {
	scenario, _ := domain.PresetStressScenario(domain.ScenarioFinancialCrisis)
	params := domain.SimulationParams{
		CurrentValue:    decimal.NewFromInt(100000),
		Years:           3,
		Simulations:     20,
		AnnualReturn:    decimal.NewFromFloat(10), // ignored on overridden years
		StressOverrides: scenario,
		Seed:            5,
	}

	summary, err := RunMonteCarloSimulation(params)
	require.NoError(t, err)

	// -40%, +5%, +15% applied exactly regardless of the configured return.
	assert.True(t, summary.Projection[1].Median.Equal(decimal.NewFromInt(60000)), "got %s", summary.Projection[1].Median)
	assert.True(t, summary.Projection[2].Median.Equal(decimal.NewFromInt(63000)), "got %s", summary.Projection[2].Median)
	assert.True(t, summary.Projection[3].Median.Equal(decimal.NewFromInt(72450)), "got %s", summary.Projection[3].Median)
}

func TestStressInflationAffectsWithdrawalsNotDeflator(t *testing.T) {
	scenario, _ := domain.PresetStressScenario(domain.ScenarioHighInflation)
	params := domain.SimulationParams{
		CurrentValue:     decimal.NewFromInt(100000),
		Years:            3,
		Simulations:      1,
		RetirementYear:   intPtr(1),
		AnnualWithdrawal: decPtr(10000),
		StressOverrides:  scenario,
	}

	summary, err := RunMonteCarloSimulation(params)
	require.NoError(t, err)

	// Withdrawals compound at the 6% override: 10000, 10600, 11236.
	assert.True(t, summary.Projection[1].Median.Equal(decimal.NewFromInt(90000)), "got %s", summary.Projection[1].Median)
	assert.True(t, summary.Projection[2].Median.Equal(decimal.NewFromInt(79400)), "got %s", summary.Projection[2].Median)
	assert.True(t, summary.Projection[3].Median.Equal(decimal.NewFromInt(68164)), "got %s", summary.Projection[3].Median)

	// Base inflation is zero, so the display deflator stays at 1 even under
	// the stress scenario.
	for _, year := range summary.Projection {
		assert.True(t, year.InflationAdjustedMedian.Equal(year.Median), "year %d", year.Year)
	}
}
