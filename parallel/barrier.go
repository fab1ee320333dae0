package parallel

import "sync"

// Barrier is a reusable rendezvous point for a fixed number of goroutines.
// Each Wait blocks until parties goroutines have called Wait in the current
// generation; the barrier then resets itself for the next generation.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	generation uint64
}

// NewBarrier creates a barrier for parties goroutines.
// Panics if parties < 1.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic("parallel: barrier needs at least one party")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Parties returns the number of goroutines the barrier waits for.
func (b *Barrier) Parties() int {
	return b.parties
}

// Wait blocks until all parties have arrived. It returns true for exactly one
// caller per generation: the last one to arrive.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return true
	}

	for gen == b.generation {
		b.cond.Wait()
	}
	return false
}
