package comm

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-parallel/parallel"
)

// localGroup connects size in-process participants. links[dst][src] carries
// values from src to dst; each pair has its own unbuffered channel, so
// successive collectives between the same pair can never be reordered.
type localGroup struct {
	size    int
	links   [][]chan float64
	barrier *parallel.Barrier
}

type localComm struct {
	group *localGroup
	rank  int
}

// NewLocalGroup returns size connected communicators, one per rank. Each must
// be driven by its own goroutine.
func NewLocalGroup(size int) ([]Comm, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	g := &localGroup{
		size:    size,
		links:   make([][]chan float64, size),
		barrier: parallel.NewBarrier(size),
	}
	for dst := range size {
		g.links[dst] = make([]chan float64, size)
		for src := range size {
			if src != dst {
				g.links[dst][src] = make(chan float64)
			}
		}
	}

	comms := make([]Comm, size)
	for r := range size {
		comms[r] = &localComm{group: g, rank: r}
	}
	return comms, nil
}

// RunLocal runs fn once per rank of a new local group, each on its own
// goroutine, and returns the first non-nil error after all ranks finished.
func RunLocal(size int, fn func(Comm) error) error {
	comms, err := NewLocalGroup(size)
	if err != nil {
		return err
	}

	var eg errgroup.Group
	for _, c := range comms {
		eg.Go(func() error {
			return fn(c)
		})
	}
	return eg.Wait()
}

func (c *localComm) Rank() int { return c.rank }
func (c *localComm) Size() int { return c.group.size }

func (c *localComm) Reduce(value float64, op parallel.Op, root int) (float64, error) {
	if err := checkRoot(root, c.group.size); err != nil {
		return 0, err
	}
	if err := checkOp(op); err != nil {
		return 0, err
	}

	if c.rank != root {
		c.group.links[root][c.rank] <- value
		return 0, nil
	}

	// Fold in rank order so the result does not depend on arrival order.
	values := make([]float64, c.group.size)
	for src := range c.group.size {
		if src == root {
			values[src] = value
			continue
		}
		values[src] = <-c.group.links[root][src]
	}
	return parallel.Fold(values, op), nil
}

func (c *localComm) Barrier() error {
	c.group.barrier.Wait()
	return nil
}
