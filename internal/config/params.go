package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// ParamsParser handles parsing of simulation parameter files.
type ParamsParser struct{}

// NewParamsParser creates a new parameter parser.
func NewParamsParser() *ParamsParser {
	return &ParamsParser{}
}

// paramsFile is the on-disk YAML shape. A stress scenario may be referenced by
// preset name (stress_scenario) or defined inline (stress_overrides).
type paramsFile struct {
	domain.SimulationParams `yaml:",inline"`
	StressScenario          string `yaml:"stress_scenario"`
}

// LoadFromFile loads simulation parameters from a YAML file.
func (pp *ParamsParser) LoadFromFile(filename string) (*domain.SimulationParams, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return pp.Parse(data)
}

// Parse decodes, normalizes and validates a YAML parameter document.
func (pp *ParamsParser) Parse(data []byte) (*domain.SimulationParams, error) {
	var file paramsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := file.SimulationParams
	if file.StressScenario != "" {
		if params.StressOverrides != nil {
			return nil, fmt.Errorf("specify either stress_scenario or stress_overrides, not both")
		}
		preset, ok := domain.PresetStressScenario(file.StressScenario)
		if !ok {
			return nil, fmt.Errorf("unknown stress scenario %q (available: %v)", file.StressScenario, domain.PresetStressScenarioNames())
		}
		params.StressOverrides = preset
	}

	params.ApplyDefaults()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return &params, nil
}

// CreateExampleParams returns a documented starting-point parameter set.
func (pp *ParamsParser) CreateExampleParams() *domain.SimulationParams {
	retirementYear := 20
	annualWithdrawal := decimal.NewFromInt(60000)

	return &domain.SimulationParams{
		CurrentValue:        decimal.NewFromInt(500000),
		Years:               40,
		Simulations:         domain.DefaultSimulations,
		AnnualReturn:        decimal.NewFromFloat(7),
		Volatility:          decimal.NewFromFloat(15),
		InflationRate:       decimal.NewFromFloat(2.5),
		MonthlyContribution: decimal.NewFromInt(1500),
		RetirementYear:      &retirementYear,
		AnnualWithdrawal:    &annualWithdrawal,
	}
}
