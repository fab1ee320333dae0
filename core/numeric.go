package core

import "math"

// defaultTolerance applies when NearlyEqual is given a non-positive tol.
const defaultTolerance = 1e-12

// NearlyEqual reports whether two results of the same computation agree:
// |a-b| <= tol·max(1, |a|, |b|). The tolerance is absolute near zero and
// relative beyond one. NaN never agrees with anything; an infinity agrees
// only with itself.
func NearlyEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	if tol <= 0 {
		tol = defaultTolerance
	}
	scale := max(1, math.Abs(a), math.Abs(b))
	return AbsError(a, b) <= tol*scale
}

// AbsError returns |got - want|.
func AbsError(got, want float64) float64 {
	return math.Abs(got - want)
}

// Seconds converts a nanosecond count to fractional seconds.
func Seconds(nanos int64) float64 {
	return float64(nanos) / 1e9
}
