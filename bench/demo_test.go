package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoNames(ds []Demo) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}

func TestSelectDemosLocal(t *testing.T) {
	all, err := selectDemos(nil, "local")
	require.NoError(t, err)
	assert.Equal(t, []string{"simd", "threads", "mpi"}, demoNames(all))

	some, err := selectDemos([]string{"mpi", " Threads "}, "local")
	require.NoError(t, err)
	assert.Equal(t, []string{"mpi", "threads"}, demoNames(some))
}

// Under MPI every process runs the driver; per-process demos would print once
// per rank, so they are excluded by default and rejected by name.
func TestSelectDemosMPI(t *testing.T) {
	def, err := selectDemos(nil, "mpi")
	require.NoError(t, err)
	assert.Equal(t, []string{"mpi"}, demoNames(def))

	named, err := selectDemos([]string{"mpi"}, "mpi")
	require.NoError(t, err)
	assert.Equal(t, []string{"mpi"}, demoNames(named))

	for _, name := range []string{"simd", "threads"} {
		_, err := selectDemos([]string{"mpi", name}, "mpi")
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestSelectDemosUnknown(t *testing.T) {
	_, err := selectDemos([]string{"gpu"}, "local")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
