package calculation

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// neverDepleted marks a path that kept a positive balance through the horizon.
const neverDepleted = math.MaxInt32

// maxConcurrentPaths bounds the number of path simulations in flight.
const maxConcurrentPaths = 10

// pathResult is one simulated trajectory. values is indexed by year offset
// with values[0] = CurrentValue; depletionYear is neverDepleted when the path
// survives.
type pathResult struct {
	values        []decimal.Decimal
	depletionYear int
}

// simulatePath advances one candidate trajectory year by year, switching from
// accumulation to withdrawal at the retirement year and clamping to zero on
// depletion. Once depleted a path stays at zero; no resurrection.
func simulatePath(params *domain.SimulationParams, overrides stressOverrides, rng *rand.Rand) pathResult {
	values := make([]decimal.Decimal, 0, params.Years+1)
	values = append(values, params.CurrentValue)

	meanReturn, _ := params.AnnualReturn.Div(decimalHundred).Float64()
	stdDev, _ := params.Volatility.Div(decimalHundred).Float64()
	annualContribution := params.AnnualContribution()
	baseInflation := params.InflationRate.Div(decimalHundred)

	depletionYear := neverDepleted
	depleted := false

	// Fixed withdrawal derived once from WithdrawalRate at the first year of
	// retirement, based on the balance immediately before that year's growth.
	var fixedWithdrawal *decimal.Decimal
	inflationMultiplier := decimalOne

	for year := 1; year <= params.Years; year++ {
		if depleted {
			values = append(values, decimal.Zero)
			continue
		}
		prev := values[year-1]

		returnRate, overridden := overrides.returns[year]
		if !overridden {
			returnRate = decimal.NewFromFloat(NormalVariate(rng, meanReturn, stdDev))
		}

		var newValue decimal.Decimal
		if params.RetirementYear != nil && year >= *params.RetirementYear {
			yearsInRetirement := year - *params.RetirementYear

			if fixedWithdrawal == nil && params.AnnualWithdrawal == nil && params.WithdrawalRate != nil {
				w := prev.Mul(params.WithdrawalRate.Div(decimalHundred))
				fixedWithdrawal = &w
			}

			var baseWithdrawal decimal.Decimal
			switch {
			case params.AnnualWithdrawal != nil:
				baseWithdrawal = *params.AnnualWithdrawal
			case fixedWithdrawal != nil:
				baseWithdrawal = *fixedWithdrawal
			}

			withdrawal := baseWithdrawal
			if params.InflationAdjust() && yearsInRetirement > 0 {
				inflationRate, ok := overrides.inflation[year]
				if !ok {
					inflationRate = baseInflation
				}
				inflationMultiplier = inflationMultiplier.Mul(decimalOne.Add(inflationRate))
				withdrawal = baseWithdrawal.Mul(inflationMultiplier)
			}

			newValue = prev.Mul(decimalOne.Add(returnRate)).Sub(withdrawal)
		} else {
			newValue = prev.Mul(decimalOne.Add(returnRate)).Add(annualContribution)
		}

		if newValue.LessThanOrEqual(decimal.Zero) {
			newValue = decimal.Zero
			depleted = true
			depletionYear = year
		}
		values = append(values, newValue)
	}

	return pathResult{values: values, depletionYear: depletionYear}
}

// runPaths executes params.Simulations independent path simulations in
// parallel. Per-path sub-seeds are drawn from the master generator up front so
// a seeded run stays reproducible across the concurrent workers.
func runPaths(params *domain.SimulationParams, overrides stressOverrides, rng *rand.Rand) []pathResult {
	seeds := make([]int64, params.Simulations)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]pathResult, params.Simulations)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentPaths)

	for i := 0; i < params.Simulations; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			pathRNG := rand.New(rand.NewSource(seeds[idx]))
			results[idx] = simulatePath(params, overrides, pathRNG)
		}(i)
	}
	wg.Wait()

	return results
}

// percentileIndex selects the floor-indexed nearest-rank order statistic.
// No interpolation: downstream chart rendering is calibrated to this exact
// indexing convention.
func percentileIndex(n int, q float64) int {
	idx := int(float64(n) * q)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// aggregateProjection reduces all paths to per-year percentile bands,
// inflation-adjusted equivalents and the cumulative depletion rate.
func aggregateProjection(params *domain.SimulationParams, paths []pathResult) []domain.ProjectionResult {
	n := len(paths)
	simulations := decimal.NewFromInt(int64(n))

	// The display deflator always uses the base inflation rate; stress
	// inflation overrides affect withdrawals only.
	deflatorBase := decimalOne.Add(params.InflationRate.Div(decimalHundred))

	projection := make([]domain.ProjectionResult, 0, params.Years+1)
	values := make([]decimal.Decimal, n)

	for year := 0; year <= params.Years; year++ {
		for i, p := range paths {
			values[i] = p.values[year]
		}
		sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })

		p10 := values[percentileIndex(n, 0.10)]
		p25 := values[percentileIndex(n, 0.25)]
		median := values[percentileIndex(n, 0.50)]
		p75 := values[percentileIndex(n, 0.75)]
		p90 := values[percentileIndex(n, 0.90)]

		deflator := deflatorBase.Pow(decimal.NewFromInt(int64(year)))

		depletedCount := 0
		for _, p := range paths {
			if p.depletionYear <= year {
				depletedCount++
			}
		}

		projection = append(projection, domain.ProjectionResult{
			Year:                    year,
			Median:                  median,
			Percentile10:            p10,
			Percentile25:            p25,
			Percentile75:            p75,
			Percentile90:            p90,
			InflationAdjustedMedian: median.Div(deflator),
			InflationAdjustedP10:    p10.Div(deflator),
			InflationAdjustedP90:    p90.Div(deflator),
			DepletionRate:           decimal.NewFromInt(int64(depletedCount)).Mul(decimalHundred).Div(simulations),
		})
	}

	return projection
}

// summarize derives the overall success rate and median depletion year from
// the per-path depletion years.
func summarize(params *domain.SimulationParams, paths []pathResult, projection []domain.ProjectionResult) *domain.SimulationSummary {
	n := len(paths)

	depletionYears := make([]int, 0, n)
	for _, p := range paths {
		if p.depletionYear <= params.Years {
			depletionYears = append(depletionYears, p.depletionYear)
		}
	}

	surviving := decimal.NewFromInt(int64(n - len(depletionYears)))
	successRate := surviving.Mul(decimalHundred).Div(decimal.NewFromInt(int64(n)))

	// A population median depletion year only exists when depletion is the
	// majority outcome.
	var medianDepletionYear *int
	if len(depletionYears) > n/2 {
		sort.Ints(depletionYears)
		mid := depletionYears[len(depletionYears)/2]
		medianDepletionYear = &mid
	}

	return &domain.SimulationSummary{
		Projection:          projection,
		SuccessRate:         successRate,
		MedianDepletionYear: medianDepletionYear,
	}
}
