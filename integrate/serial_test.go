package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-parallel/internal/testutil"
)

// Midpoints 0.125, 0.375, 0.625, 0.875 give f ≈ 3.9385, 3.5068, 2.8764,
// 2.2655; their sum times h = 0.25 is ≈ 3.1468.
func TestSerialRectangleFourIntervals(t *testing.T) {
	got, err := Serial(Rectangle, 4)
	require.NoError(t, err)

	want := (F(0.125) + F(0.375) + F(0.625) + F(0.875)) * 0.25
	testutil.RequireNearlyEqual(t, got, want, 1e-15)
	assert.InDelta(t, 3.1468005, got, 1e-6)
	assert.InDelta(t, 0.0052079, ErrorVsPi(got), 1e-6)
}

func TestSerialSmallN(t *testing.T) {
	cases := []struct {
		rule Rule
		n    int
		want float64
	}{
		{Rectangle, 1, 3.2},
		{Trapezoidal, 1, 3.0},
		{Simpson, 1, (F(0) + 4*F(0.5) + F(1)) * 0.5 / 3},
		{Simpson, 2, (F(0) + 4*F(0.5) + F(1)) * 0.5 / 3},
	}
	for _, tc := range cases {
		got, err := Serial(tc.rule, tc.n)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-15, "%v n=%d", tc.rule, tc.n)
	}
}

func TestSerialSimpsonOddBehavesAsNextEven(t *testing.T) {
	for _, n := range []int{1, 3, 5, 99, 1001, 123457} {
		odd, err := Serial(Simpson, n)
		require.NoError(t, err)
		even, err := Serial(Simpson, n+1)
		require.NoError(t, err)
		assert.Equal(t, even, odd, "n=%d", n)
	}
}

func TestSerialConvergesToPi(t *testing.T) {
	for _, rule := range Rules() {
		got, err := Serial(rule, 10000)
		require.NoError(t, err)
		assert.Less(t, ErrorVsPi(got), 1e-4, "rule=%v", rule)
	}
}

func TestSerialErrorDecreasesMonotonically(t *testing.T) {
	cases := []struct {
		rule Rule
		maxN int // beyond this the error sits at the float64 noise floor
	}{
		{Rectangle, 1 << 14},
		{Trapezoidal, 1 << 14},
		{Simpson, 128},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			prev := math.Inf(1)
			for n := 2; n <= tc.maxN; n *= 2 {
				v, err := Serial(tc.rule, n)
				require.NoError(t, err)
				e := ErrorVsPi(v)
				require.Less(t, e, prev, "n=%d", n)
				prev = e
			}
		})
	}
}

func TestSerialRejectsInvalidIntervals(t *testing.T) {
	for _, rule := range Rules() {
		_, err := Serial(rule, 0)
		assert.ErrorIs(t, err, ErrInvalidIntervals)
	}
}
