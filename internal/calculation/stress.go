package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// stressOverrides holds the deterministic per-year rates resolved from a
// stress scenario, percentages already converted to decimals. Built once per
// run and shared read-only across all path simulations.
type stressOverrides struct {
	returns   map[int]decimal.Decimal
	inflation map[int]decimal.Decimal
}

// resolveStressOverrides builds the year-offset lookup maps. A nil scenario
// yields empty maps.
func resolveStressOverrides(scenario *domain.StressScenario) stressOverrides {
	overrides := stressOverrides{
		returns:   make(map[int]decimal.Decimal),
		inflation: make(map[int]decimal.Decimal),
	}
	if scenario == nil {
		return overrides
	}
	for _, o := range scenario.ReturnOverrides {
		overrides.returns[o.YearOffset] = o.Rate.Div(decimalHundred)
	}
	for _, o := range scenario.InflationOverrides {
		overrides.inflation[o.YearOffset] = o.Rate.Div(decimalHundred)
	}
	return overrides
}
