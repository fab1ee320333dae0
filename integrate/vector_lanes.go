package integrate

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-parallel/internal/lanes"
)

func init() {
	Backends.Register(Backend{
		Name:      "lanes",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Integrate: integrateLanes,
	})
}

// simpsonLaneWeights are the Simpson weights of four consecutive interior
// nodes starting at an odd index.
var simpsonLaneWeights = lanes.Vec4{4, 2, 4, 2}

// integrateLanes steps through the interior nodes four at a time; nodes that
// do not fill a whole vector are finished by a scalar tail loop.
func integrateLanes(rule Rule, g Grid) float64 {
	first, count, offset := rule.interior(g)
	four := lanes.Splat(4)
	one := lanes.Splat(1)

	var acc lanes.Vec4
	k := 0
	for ; k+lanes.Width <= count; k += lanes.Width {
		x := lanes.Iota(float64(first+k) + offset).Scale(g.H)
		y := four.Div(one.Add(x.Mul(x)))
		if rule == Simpson {
			// first is 1 and k a multiple of 4, so the lane run starts odd.
			y = y.Mul(simpsonLaneWeights)
		}
		acc = acc.Add(y)
	}

	tail := PartialSum(rule, g, k, count, 1)
	return (Boundary(rule, g) + acc.HSum() + tail) * Scale(rule, g)
}
