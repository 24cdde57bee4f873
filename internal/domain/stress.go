package domain

import (
	"github.com/shopspring/decimal"
)

// RateOverride pins a single year offset to a deterministic rate (percent).
type RateOverride struct {
	YearOffset int             `json:"year_offset" yaml:"year_offset"`
	Rate       decimal.Decimal `json:"rate" yaml:"rate"`
}

// StressScenario is a named, deterministic override of returns and/or
// inflation for specific year offsets, used to test portfolio resilience
// against historical-style shocks.
type StressScenario struct {
	Name               string         `json:"name" yaml:"name"`
	Description        string         `json:"description,omitempty" yaml:"description"`
	ReturnOverrides    []RateOverride `json:"return_overrides,omitempty" yaml:"return_overrides"`
	InflationOverrides []RateOverride `json:"inflation_overrides,omitempty" yaml:"inflation_overrides"`
}

// Preset scenario names.
const (
	ScenarioFinancialCrisis = "financial_crisis"
	ScenarioHighInflation   = "high_inflation"
	ScenarioLostDecade      = "lost_decade"
)

// PresetStressScenario returns a built-in scenario by name. The returned value
// is a fresh copy; callers may modify it freely.
func PresetStressScenario(name string) (*StressScenario, bool) {
	switch name {
	case ScenarioFinancialCrisis:
		return &StressScenario{
			Name:        ScenarioFinancialCrisis,
			Description: "2008-style crash followed by a two-year recovery",
			ReturnOverrides: []RateOverride{
				{YearOffset: 1, Rate: decimal.NewFromInt(-40)},
				{YearOffset: 2, Rate: decimal.NewFromInt(5)},
				{YearOffset: 3, Rate: decimal.NewFromInt(15)},
			},
		}, true
	case ScenarioHighInflation:
		return &StressScenario{
			Name:               ScenarioHighInflation,
			Description:        "sustained 6% inflation for five years",
			InflationOverrides: flatOverrides(1, 5, decimal.NewFromInt(6)),
		}, true
	case ScenarioLostDecade:
		return &StressScenario{
			Name:            ScenarioLostDecade,
			Description:     "ten years of near-zero returns",
			ReturnOverrides: flatOverrides(1, 10, decimal.NewFromFloat(0.5)),
		}, true
	}
	return nil, false
}

// PresetStressScenarioNames lists the built-in scenarios in a stable order.
func PresetStressScenarioNames() []string {
	return []string{ScenarioFinancialCrisis, ScenarioHighInflation, ScenarioLostDecade}
}

func flatOverrides(fromYear, toYear int, rate decimal.Decimal) []RateOverride {
	overrides := make([]RateOverride, 0, toYear-fromYear+1)
	for year := fromYear; year <= toYear; year++ {
		overrides = append(overrides, RateOverride{YearOffset: year, Rate: rate})
	}
	return overrides
}
