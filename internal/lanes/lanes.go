// Package lanes provides a fixed-width vector of four float64 lanes with
// elementwise arithmetic, the portable stand-in for a 256-bit SIMD register.
//
// Every operation acts lane by lane; lanes never exchange data except through
// HSum, the horizontal reduction.
package lanes

import vecmath "github.com/cwbudde/algo-vecmath"

// Width is the number of lanes in a Vec4.
const Width = 4

// Vec4 holds four float64 lanes.
type Vec4 [Width]float64

// Splat returns a vector with every lane set to v.
func Splat(v float64) Vec4 {
	return Vec4{v, v, v, v}
}

// Iota returns {base, base+1, base+2, base+3}.
func Iota(base float64) Vec4 {
	return Vec4{base, base + 1, base + 2, base + 3}
}

// Add returns a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Mul returns a * b.
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div returns a / b.
func (a Vec4) Div(b Vec4) Vec4 {
	return Vec4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale returns a * s.
func (a Vec4) Scale(s float64) Vec4 {
	return Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// HSum returns the horizontal sum of the lanes.
func (a Vec4) HSum() float64 {
	return vecmath.Sum(a[:])
}
