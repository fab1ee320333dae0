package parallel

import "sync"

// Guarded holds a value behind a reader/writer lock. Loads may run
// concurrently; updates are exclusive.
type Guarded[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewGuarded wraps v.
func NewGuarded[T any](v T) *Guarded[T] {
	return &Guarded[T]{v: v}
}

// Update calls fn with a pointer to the value under the write lock.
func (g *Guarded[T]) Update(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.v)
}

// Load returns a copy of the current value.
func (g *Guarded[T]) Load() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.v
}
