//go:build !mpi

package comm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-parallel/parallel"
)

func TestLaunchUsesLocalBackend(t *testing.T) {
	assert.Equal(t, "local", Backend)

	var got float64
	err := Launch(3, func(c Comm) error {
		v, err := c.Reduce(2, parallel.OpSum, 0)
		if c.Rank() == 0 {
			got = v
		}
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}
