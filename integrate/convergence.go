package integrate

import (
	"math"

	approx "github.com/meko-christian/algo-approx"
)

// NoiseFloor is the smallest |error| vs. π that still measures
// discretization rather than float64 rounding: a thousand ulps of π.
const NoiseFloor = 1e3 * math.Pi * 0x1p-52

// ObservedOrder estimates the convergence order p from two runs, assuming
// err ≈ C·n^(-p): p = log(err1/err2) / log(n2/n1).
//
// Returns NaN when either error is at or below NoiseFloor or the interval
// counts are equal, i.e. when the ratio carries no information.
func ObservedOrder(n1 int, err1 float64, n2 int, err2 float64) float64 {
	if err1 <= NoiseFloor || err2 <= NoiseFloor || n1 <= 0 || n2 <= 0 || n1 == n2 {
		return math.NaN()
	}
	num := approx.FastLogPrec(err1/err2, approx.PrecisionHigh)
	den := approx.FastLogPrec(float64(n2)/float64(n1), approx.PrecisionHigh)
	return num / den
}
