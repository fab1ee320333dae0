//go:build mpi

package comm

/*
#cgo LDFLAGS: -lmpi
#include <mpi.h>

static int world_rank(void) {
	int r;
	MPI_Comm_rank(MPI_COMM_WORLD, &r);
	return r;
}

static int world_size(void) {
	int s;
	MPI_Comm_size(MPI_COMM_WORLD, &s);
	return s;
}

static int reduce_double(double in, double *out, int prod, int root) {
	MPI_Op op = prod ? MPI_PROD : MPI_SUM;
	return MPI_Reduce(&in, out, 1, MPI_DOUBLE, op, root, MPI_COMM_WORLD);
}

static int world_barrier(void) {
	return MPI_Barrier(MPI_COMM_WORLD);
}
*/
import "C"

import (
	"fmt"

	"github.com/cwbudde/algo-parallel/parallel"
)

// Backend names the communicator implementation Launch uses.
const Backend = "mpi"

// mpiComm is this process's view of MPI_COMM_WORLD. MPI_ERRORS_ARE_FATAL is
// assumed, so return codes other than MPI_SUCCESS are reported but never
// retried.
type mpiComm struct {
	rank int
	size int
}

// Launch initializes MPI, runs fn once with this process's world
// communicator and finalizes MPI. The participant count is fixed by the
// launcher (mpirun -np); size must match it or be 0.
func Launch(size int, fn func(Comm) error) error {
	var argc C.int
	C.MPI_Init(&argc, nil)
	defer C.MPI_Finalize()

	c := &mpiComm{rank: int(C.world_rank()), size: int(C.world_size())}
	if size != 0 && size != c.size {
		return fmt.Errorf("%w: configured %d ranks, launched with %d", ErrInvalidSize, size, c.size)
	}
	return fn(c)
}

func (c *mpiComm) Rank() int { return c.rank }
func (c *mpiComm) Size() int { return c.size }

func (c *mpiComm) Reduce(value float64, op parallel.Op, root int) (float64, error) {
	if err := checkRoot(root, c.size); err != nil {
		return 0, err
	}
	if err := checkOp(op); err != nil {
		return 0, err
	}

	prod := C.int(0)
	if op == parallel.OpProduct {
		prod = 1
	}

	var out C.double
	if rc := C.reduce_double(C.double(value), &out, prod, C.int(root)); rc != C.MPI_SUCCESS {
		return 0, fmt.Errorf("comm: MPI_Reduce returned %d", int(rc))
	}
	if c.rank != root {
		return 0, nil
	}
	return float64(out), nil
}

func (c *mpiComm) Barrier() error {
	if rc := C.world_barrier(); rc != C.MPI_SUCCESS {
		return fmt.Errorf("comm: MPI_Barrier returned %d", int(rc))
	}
	return nil
}
