package parallel

import (
	"golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-parallel/core"
)

// Op is an associative reduction operator.
type Op int

const (
	// OpSum adds values; identity 0.
	OpSum Op = iota
	// OpProduct multiplies values; identity 1.
	OpProduct
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpSum:
		return "sum"
	case OpProduct:
		return "product"
	default:
		return "unknown"
	}
}

// Identity returns the neutral element of op.
func (op Op) Identity() float64 {
	if op == OpProduct {
		return 1
	}
	return 0
}

// Apply combines two values with op.
func (op Op) Apply(a, b float64) float64 {
	if op == OpProduct {
		return a * b
	}
	return a + b
}

// Fold combines values left to right with op, starting from op.Identity().
func Fold(values []float64, op Op) float64 {
	acc := op.Identity()
	for _, v := range values {
		acc = op.Apply(acc, v)
	}
	return acc
}

// partial is a per-worker accumulator padded to its own cache line.
type partial struct {
	v float64
	_ cpu.CacheLinePad
}

// MapReduce evaluates partialSum over chunks of [0, n) on the executor and
// returns the sum of all chunk results. Each worker accumulates into a private
// slot; the slots are folded once after every worker has returned.
func MapReduce(exec Executor, n int, partialSum func(start, end int) float64) float64 {
	if n <= 0 {
		return 0
	}

	slots := make([]partial, max(exec.Workers(), 1))
	exec.ForRange(n, func(worker, start, end int) {
		slots[worker].v += partialSum(start, end)
	})

	values := make([]float64, len(slots))
	for i := range slots {
		values[i] = slots[i].v
	}
	return Fold(values, OpSum)
}

// MapReduce is shorthand for MapReduce(p, n, partialSum).
func (p *Pool) MapReduce(n int, partialSum func(start, end int) float64) float64 {
	return MapReduce(p, n, partialSum)
}

// Reduce combines values with op using a static split across workers. Workers
// publish their chunk result and meet at a barrier; the last worker to arrive
// folds the published partials.
func Reduce(values []float64, op Op, opts ...core.RunOption) float64 {
	cfg := core.ApplyRunOptions(opts...)
	ranges := Split(len(values), cfg.Workers)
	if len(ranges) == 0 {
		return op.Identity()
	}

	partials := make([]partial, len(ranges))
	barrier := NewBarrier(len(ranges))
	var result float64

	run := func(w int, r Range) {
		acc := op.Identity()
		for _, v := range values[r.Start:r.End] {
			acc = op.Apply(acc, v)
		}
		partials[w].v = acc

		if barrier.Wait() {
			folded := make([]float64, len(partials))
			for i := range partials {
				folded[i] = partials[i].v
			}
			result = Fold(folded, op)
		}
	}

	if len(ranges) == 1 {
		run(0, ranges[0])
		return result
	}

	// The static pool below runs exactly one goroutine per range, which the
	// barrier party count relies on.
	pool := &Pool{cfg: core.RunConfig{Workers: len(ranges), Schedule: core.ScheduleStatic}}
	pool.ForRange(len(values), func(w, start, end int) {
		run(w, Range{Start: start, End: end})
	})
	return result
}
