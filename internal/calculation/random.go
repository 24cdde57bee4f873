package calculation

import (
	"math"
	"math/rand"
)

// minUniform keeps log(u1) finite when the generator lands on exactly 0.
const minUniform = 1e-12

// NormalVariate draws one sample from Normal(mean, stdDev) using the
// Box-Muller transform. Each call consumes exactly two uniform draws from rng.
func NormalVariate(rng *rand.Rand, mean, stdDev float64) float64 {
	u1 := rng.Float64()
	if u1 < minUniform {
		u1 = minUniform
	}
	u2 := rng.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stdDev
}
