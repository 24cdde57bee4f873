package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultSimulations is the number of independent paths used when the caller
// does not specify one.
const DefaultSimulations = 1000

var decimalTwelve = decimal.NewFromInt(12)

// SimulationParams is the full input to one Monte Carlo projection run. Rates
// are percentages (7 means 7%); the engine converts them to decimals
// internally. Optional fields are pointers so that "absent" is distinguishable
// from zero.
type SimulationParams struct {
	CurrentValue  decimal.Decimal `json:"current_value" yaml:"current_value"`
	Years         int             `json:"years" yaml:"years"`
	Simulations   int             `json:"simulations" yaml:"simulations"`
	AnnualReturn  decimal.Decimal `json:"annual_return" yaml:"annual_return"`
	Volatility    decimal.Decimal `json:"volatility" yaml:"volatility"`
	InflationRate decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate"`

	MonthlyContribution decimal.Decimal `json:"monthly_contribution,omitempty" yaml:"monthly_contribution"`

	// RetirementYear is the year offset at which the path switches from
	// accumulation to withdrawal. Absent means the path never retires.
	RetirementYear *int `json:"retirement_year,omitempty" yaml:"retirement_year"`

	// AnnualWithdrawal is a fixed withdrawal in today's dollars. When absent
	// and WithdrawalRate is set, the withdrawal is derived once from the
	// portfolio value at the first year of retirement.
	AnnualWithdrawal *decimal.Decimal `json:"annual_withdrawal,omitempty" yaml:"annual_withdrawal"`
	WithdrawalRate   *decimal.Decimal `json:"withdrawal_rate,omitempty" yaml:"withdrawal_rate"`

	// InflationAdjustWithdrawals defaults to true when absent.
	InflationAdjustWithdrawals *bool `json:"inflation_adjust_withdrawals,omitempty" yaml:"inflation_adjust_withdrawals"`

	StressOverrides *StressScenario `json:"stress_overrides,omitempty" yaml:"stress_overrides"`

	// Seed makes a run reproducible; 0 selects a time-based seed.
	Seed int64 `json:"seed,omitempty" yaml:"seed"`
}

// ApplyDefaults fills in unset fields that have documented defaults.
func (p *SimulationParams) ApplyDefaults() {
	if p.Simulations == 0 {
		p.Simulations = DefaultSimulations
	}
}

// Validate rejects structurally invalid input. It is a construction-time
// precondition check; once it passes, a run cannot fail.
func (p *SimulationParams) Validate() error {
	if p.Simulations <= 0 {
		return fmt.Errorf("simulations must be positive, got %d", p.Simulations)
	}
	if p.Years < 0 {
		return fmt.Errorf("years cannot be negative, got %d", p.Years)
	}
	if p.CurrentValue.LessThan(decimal.Zero) {
		return fmt.Errorf("current value cannot be negative, got %s", p.CurrentValue)
	}
	if p.Volatility.LessThan(decimal.Zero) {
		return fmt.Errorf("volatility cannot be negative, got %s", p.Volatility)
	}
	if p.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative, got %s", p.MonthlyContribution)
	}
	if p.WithdrawalRate != nil {
		if p.WithdrawalRate.LessThan(decimal.Zero) || p.WithdrawalRate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("withdrawal rate must be between 0 and 100, got %s", p.WithdrawalRate)
		}
	}
	return nil
}

// AnnualContribution converts the monthly contribution to a yearly amount.
func (p *SimulationParams) AnnualContribution() decimal.Decimal {
	return p.MonthlyContribution.Mul(decimalTwelve)
}

// InflationAdjust reports whether withdrawals compound with inflation.
func (p *SimulationParams) InflationAdjust() bool {
	return p.InflationAdjustWithdrawals == nil || *p.InflationAdjustWithdrawals
}

// ProjectionResult is the cross-path aggregate for a single year. Percentiles
// are floor-indexed order statistics over all simulated paths; the
// inflation-adjusted fields deflate by the base inflation rate compounded to
// this year. DepletionRate is the percent of paths (0-100) depleted by this
// year.
type ProjectionResult struct {
	Year                    int             `json:"year"`
	Median                  decimal.Decimal `json:"median"`
	Percentile10            decimal.Decimal `json:"percentile_10"`
	Percentile25            decimal.Decimal `json:"percentile_25"`
	Percentile75            decimal.Decimal `json:"percentile_75"`
	Percentile90            decimal.Decimal `json:"percentile_90"`
	InflationAdjustedMedian decimal.Decimal `json:"inflation_adjusted_median"`
	InflationAdjustedP10    decimal.Decimal `json:"inflation_adjusted_p10"`
	InflationAdjustedP90    decimal.Decimal `json:"inflation_adjusted_p90"`
	DepletionRate           decimal.Decimal `json:"depletion_rate"`
}

// SimulationSummary is the output contract of one projection run. Projection
// is indexed by year (0..Years inclusive). MedianDepletionYear is nil when
// more than half the paths survive to the horizon.
type SimulationSummary struct {
	Projection          []ProjectionResult `json:"projection"`
	SuccessRate         decimal.Decimal    `json:"success_rate"`
	MedianDepletionYear *int               `json:"median_depletion_year"`
}
