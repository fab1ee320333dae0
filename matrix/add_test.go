package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-parallel/core"
	"github.com/cwbudde/algo-parallel/parallel"
)

func TestAdd(t *testing.T) {
	a, _ := FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := FromRows([][]int{{10, 20}, {30, 40}})

	got, err := Add(a, b)
	require.NoError(t, err)
	want, _ := FromRows([][]int{{11, 22}, {33, 44}})
	assert.True(t, want.Equal(got))
}

func TestParallelAddMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := Random(101, 37, 1000, rng)
	require.NoError(t, err)
	b, err := Random(101, 37, 1000, rng)
	require.NoError(t, err)

	want, err := Add(a, b)
	require.NoError(t, err)
	for _, workers := range []int{1, 2, 5, 8} {
		got, err := ParallelAdd(a, b, parallel.New(core.WithWorkers(workers)))
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "workers=%d", workers)
	}
}

func TestAddErrors(t *testing.T) {
	a, _ := New(2, 3)
	b, _ := New(3, 2)

	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = ParallelAdd(a, b, parallel.New())
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Add(a, nil)
	assert.ErrorIs(t, err, ErrBadShape)
}
