package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// MonteCarloEngine runs portfolio projections. It holds no per-run state, so
// a single engine may be reused across invocations.
type MonteCarloEngine struct {
	Logger Logger
}

// NewMonteCarloEngine creates an engine with a no-op logger.
func NewMonteCarloEngine() *MonteCarloEngine {
	return &MonteCarloEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Passing nil restores the no-op logger.
func (e *MonteCarloEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunMonteCarloSimulation simulates params.Simulations independent portfolio
// trajectories over params.Years and reduces them to percentile bands, a
// success rate and a median depletion year. Input is validated up front; once
// validation passes the run cannot fail.
func (e *MonteCarloEngine) RunMonteCarloSimulation(params domain.SimulationParams) (*domain.SimulationSummary, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	seed := params.Seed
	if seed == 0 {
		seed = seedFunc()
	}
	rng := rand.New(rand.NewSource(seed))

	overrides := resolveStressOverrides(params.StressOverrides)
	e.Logger.Debugf("running %d simulations over %d years (seed %d)", params.Simulations, params.Years, seed)

	paths := runPaths(&params, overrides, rng)
	projection := aggregateProjection(&params, paths)
	return summarize(&params, paths, projection), nil
}

// Project returns only the per-year projection sequence, for callers such as
// chart rendering that do not need the aggregate success metrics.
func (e *MonteCarloEngine) Project(params domain.SimulationParams) ([]domain.ProjectionResult, error) {
	summary, err := e.RunMonteCarloSimulation(params)
	if err != nil {
		return nil, err
	}
	return summary.Projection, nil
}

// RunMonteCarloSimulation runs params on a fresh engine with the default
// logger.
func RunMonteCarloSimulation(params domain.SimulationParams) (*domain.SimulationSummary, error) {
	return NewMonteCarloEngine().RunMonteCarloSimulation(params)
}

// CompoundGrowth computes currentValue * (1 + annualReturn/100)^years, a quick
// deterministic estimate with no ties to the Monte Carlo engine.
func CompoundGrowth(currentValue decimal.Decimal, years int, annualReturn decimal.Decimal) decimal.Decimal {
	growth := decimalOne.Add(annualReturn.Div(decimalHundred))
	return currentValue.Mul(growth.Pow(decimal.NewFromInt(int64(years))))
}
