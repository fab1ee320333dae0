package parallel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-parallel/core"
)

func TestFold(t *testing.T) {
	assert.Equal(t, 0.0, Fold(nil, OpSum))
	assert.Equal(t, 1.0, Fold(nil, OpProduct))
	assert.Equal(t, 10.0, Fold([]float64{1, 2, 3, 4}, OpSum))
	assert.Equal(t, 24.0, Fold([]float64{1, 2, 3, 4}, OpProduct))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "sum", OpSum.String())
	assert.Equal(t, "product", OpProduct.String())
	assert.Equal(t, "unknown", Op(7).String())
}

func TestMapReduceMatchesSerial(t *testing.T) {
	const n = 100000
	term := func(i int) float64 { return 1 / float64(i+1) }
	want := 0.0
	for i := range n {
		want += term(i)
	}

	for _, sched := range []core.Schedule{core.ScheduleStatic, core.ScheduleDynamic} {
		for _, workers := range []int{1, 2, 3, 8} {
			pool := New(core.WithWorkers(workers), core.WithSchedule(sched), core.WithChunkSize(1000))
			got := pool.MapReduce(n, func(start, end int) float64 {
				s := 0.0
				for i := start; i < end; i++ {
					s += term(i)
				}
				return s
			})
			require.InDelta(t, want, got, 1e-9, "schedule=%v workers=%d", sched, workers)
		}
	}
}

func TestMapReduceEmpty(t *testing.T) {
	got := New(core.WithWorkers(4)).MapReduce(0, func(_, _ int) float64 { return 1 })
	assert.Zero(t, got)
}

// The lab reduction: sum and product of 1..10 over three workers.
func TestReduceSumAndProduct(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = float64(i + 1)
	}

	assert.Equal(t, 55.0, Reduce(values, OpSum, core.WithWorkers(3)))
	assert.Equal(t, 3628800.0, Reduce(values, OpProduct, core.WithWorkers(3)))
}

func TestReduceEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, Reduce(nil, OpSum))
	assert.Equal(t, 1.0, Reduce(nil, OpProduct))
	assert.Equal(t, 7.0, Reduce([]float64{7}, OpSum, core.WithWorkers(8)))

	values := []float64{2, 0.5, math.Inf(1)}
	assert.True(t, math.IsInf(Reduce(values, OpSum, core.WithWorkers(2)), 1))
}
