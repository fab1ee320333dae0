package integrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-parallel/comm"
	"github.com/cwbudde/algo-parallel/core"
	"github.com/cwbudde/algo-parallel/internal/testutil"
	"github.com/cwbudde/algo-parallel/parallel"
)

var agreementSizes = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 15, 16, 17, 255, 256, 257, 1000, 1023, 100001}

func serialOrFail(t *testing.T, rule Rule, n int) float64 {
	t.Helper()
	v, err := Serial(rule, n)
	require.NoError(t, err)
	return v
}

func TestVectorBackendsAgreeWithSerial(t *testing.T) {
	for _, b := range Backends.List() {
		for _, rule := range Rules() {
			for _, n := range agreementSizes {
				got, err := VectorWith(b.Name, rule, n)
				require.NoError(t, err)
				assert.InDelta(t, serialOrFail(t, rule, n), got, 1e-9, "backend=%s rule=%v n=%d", b.Name, rule, n)
			}
		}
	}
}

func TestVectorDispatch(t *testing.T) {
	name := VectorBackend()
	_, ok := Backends.ByName(name)
	require.True(t, ok, "selected backend %q not registered", name)

	got, err := Vector(Simpson, 1001)
	require.NoError(t, err)
	assert.InDelta(t, serialOrFail(t, Simpson, 1001), got, 1e-9)
}

func TestVectorErrors(t *testing.T) {
	_, err := Vector(Rectangle, 0)
	assert.ErrorIs(t, err, ErrInvalidIntervals)

	_, err = VectorWith("avx9000", Rectangle, 10)
	assert.Error(t, err)

	_, err = VectorWith("lanes", Rectangle, -5)
	assert.ErrorIs(t, err, ErrInvalidIntervals)
}

func TestThreadedAgreesWithSerial(t *testing.T) {
	schedules := []core.Schedule{core.ScheduleStatic, core.ScheduleDynamic}
	for _, sched := range schedules {
		for _, workers := range []int{1, 2, 3, 4, 7} {
			pool := parallel.New(core.WithWorkers(workers), core.WithSchedule(sched), core.WithChunkSize(64))
			for _, rule := range Rules() {
				for _, n := range agreementSizes {
					got, err := Threaded(rule, n, pool)
					require.NoError(t, err)
					assert.InDelta(t, serialOrFail(t, rule, n), got, 1e-9,
						"schedule=%v workers=%d rule=%v n=%d", sched, workers, rule, n)
				}
			}
		}
	}
}

func TestThreadedRejectsInvalidIntervals(t *testing.T) {
	_, err := Threaded(Trapezoidal, 0, parallel.New())
	assert.ErrorIs(t, err, ErrInvalidIntervals)
}

func TestDistributedAgreesWithSerial(t *testing.T) {
	for size := 1; size <= 5; size++ {
		for _, rule := range Rules() {
			for _, n := range []int{1, 2, 3, 10, 999, 1000, 10000} {
				want := serialOrFail(t, rule, n)
				results := make([]float64, size)

				err := comm.RunLocal(size, func(c comm.Comm) error {
					v, err := Distributed(c, rule, n)
					results[c.Rank()] = v
					return err
				})
				require.NoError(t, err)

				assert.InDelta(t, want, results[Coordinator], 1e-9, "size=%d rule=%v n=%d", size, rule, n)
				for r := 1; r < size; r++ {
					assert.Zero(t, results[r], "non-root rank %d", r)
				}
			}
		}
	}
}

// Invalid n is rejected identically on every rank before any collective
// starts, so no participant is left blocked in the reduction.
func TestDistributedRejectsInvalidIntervals(t *testing.T) {
	err := comm.RunLocal(3, func(c comm.Comm) error {
		_, err := Distributed(c, Simpson, 0)
		return err
	})
	assert.ErrorIs(t, err, ErrInvalidIntervals)
}

// Across the size sweep all strategies stay within 1e-9 of each other, and
// the spread between them is far below the discretization error.
func TestStrategiesSweep(t *testing.T) {
	pool := parallel.New(core.WithWorkers(4))
	for _, rule := range Rules() {
		var serial, vector, threaded []float64
		for _, n := range agreementSizes {
			serial = append(serial, serialOrFail(t, rule, n))

			v, err := Vector(rule, n)
			require.NoError(t, err)
			vector = append(vector, v)

			v, err = Threaded(rule, n, pool)
			require.NoError(t, err)
			threaded = append(threaded, v)
		}

		testutil.RequireSliceNearlyEqual(t, vector, serial, 1e-9)
		testutil.RequireSliceNearlyEqual(t, threaded, serial, 1e-9)

		spread, err := testutil.MaxAbsDiff(vector, threaded)
		require.NoError(t, err)
		t.Logf("%s: max |vector - threaded| = %.3e", rule, spread)
	}
}
