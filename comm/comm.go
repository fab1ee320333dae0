// Package comm provides the collective-communication capability of the
// distributed demo: rank and size queries, a blocking reduce-to-root and a
// barrier.
//
// Two backends implement Comm. The default backend runs every rank as a
// goroutine of the current process and connects them with channels. Building
// with the mpi tag (and cgo) switches Launch to MPI_COMM_WORLD, so the same
// program can run under mpirun:
//
//	go build -tags mpi ./cmd/parbench
//	mpirun -np 4 ./parbench mpi
//
// There is no cancellation, retry or timeout: a participant that never joins
// a collective blocks every other participant of that collective forever.
package comm

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-parallel/parallel"
)

// Errors returned by communicators.
var (
	ErrInvalidSize   = errors.New("comm: participant count must be at least 1")
	ErrInvalidRoot   = errors.New("comm: root rank out of range")
	ErrUnsupportedOp = errors.New("comm: unsupported reduction operator")
)

// Comm is one participant's view of a fixed-size group.
type Comm interface {
	// Rank returns this participant's identity in [0, Size()).
	Rank() int

	// Size returns the number of participants.
	Size() int

	// Reduce combines value from every participant with op and delivers the
	// result to root. It blocks until this participant's contribution has
	// been consumed. Non-root participants receive 0.
	// Every participant must call Reduce with the same op and root.
	Reduce(value float64, op parallel.Op, root int) (float64, error)

	// Barrier blocks until every participant has called Barrier.
	Barrier() error
}

func checkRoot(root, size int) error {
	if root < 0 || root >= size {
		return fmt.Errorf("%w: root %d, size %d", ErrInvalidRoot, root, size)
	}
	return nil
}

func checkOp(op parallel.Op) error {
	if op != parallel.OpSum && op != parallel.OpProduct {
		return fmt.Errorf("%w: %v", ErrUnsupportedOp, op)
	}
	return nil
}
