package integrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-parallel/core"
)

// Errors returned by the integration kernels.
var (
	ErrInvalidIntervals = errors.New("integrate: interval count must be at least 1")
	ErrUnknownRule      = errors.New("integrate: unknown quadrature rule")
)

// Rule is a quadrature rule.
type Rule int

const (
	Rectangle Rule = iota
	Trapezoidal
	Simpson
)

// Rules returns all supported rules in reporting order.
func Rules() []Rule {
	return []Rule{Rectangle, Trapezoidal, Simpson}
}

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case Rectangle:
		return "rectangle"
	case Trapezoidal:
		return "trapezoidal"
	case Simpson:
		return "simpson"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

func (r Rule) valid() bool {
	return r >= Rectangle && r <= Simpson
}

// F is the integrand 4/(1+x²).
func F(x float64) float64 {
	return 4.0 / (1.0 + x*x)
}

// ErrorVsPi returns |v - π|.
func ErrorVsPi(v float64) float64 {
	return core.AbsError(v, math.Pi)
}

// Grid is the uniform partition of [0, 1] used by a rule.
type Grid struct {
	N int     // effective interval count
	H float64 // step width 1/N
}

// NewGrid validates n and returns the partition rule evaluates on.
// Simpson needs an even interval count, so an odd n becomes n+1.
func NewGrid(rule Rule, n int) (Grid, error) {
	if !rule.valid() {
		return Grid{}, fmt.Errorf("%w: %d", ErrUnknownRule, int(rule))
	}
	if n < 1 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidIntervals, n)
	}
	if rule == Simpson && n%2 != 0 {
		n++
	}
	return Grid{N: n, H: 1.0 / float64(n)}, nil
}

// interior describes the interior node set of rule on g: node k (0-based)
// sits at index first+k, abscissa (first+k+offset)*h.
func (r Rule) interior(g Grid) (first, count int, offset float64) {
	if r == Rectangle {
		return 0, g.N, 0.5
	}
	return 1, g.N - 1, 0
}

// InteriorNodes returns the number of interior nodes rule sums over on g.
func InteriorNodes(rule Rule, g Grid) int {
	_, count, _ := rule.interior(g)
	return count
}

func (r Rule) weight(i int) float64 {
	if r != Simpson {
		return 1
	}
	if i%2 == 0 {
		return 2
	}
	return 4
}

// Boundary returns the endpoint contribution of rule. It must be added once
// per integral, before Scale is applied.
func Boundary(rule Rule, _ Grid) float64 {
	switch rule {
	case Trapezoidal:
		return 0.5 * (F(0) + F(1))
	case Simpson:
		return F(0) + F(1)
	default:
		return 0
	}
}

// Scale returns the factor applied to the weighted sum: h, or h/3 for Simpson.
func Scale(rule Rule, g Grid) float64 {
	if rule == Simpson {
		return g.H / 3.0
	}
	return g.H
}

// PartialSum returns the weighted integrand sum over interior nodes
// k = start, start+stride, ... below end. end is clamped to the node count.
func PartialSum(rule Rule, g Grid, start, end, stride int) float64 {
	first, count, offset := rule.interior(g)
	end = min(end, count)
	if stride < 1 {
		stride = 1
	}

	sum := 0.0
	for k := start; k < end; k += stride {
		i := first + k
		sum += rule.weight(i) * F((float64(i)+offset)*g.H)
	}
	return sum
}
