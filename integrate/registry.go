package integrate

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Backend is a registered data-parallel implementation of the quadrature
// rules.
type Backend struct {
	// Name is a human-readable identifier (e.g. "lanes", "vecmath").
	Name string

	// SIMDLevel is the instruction set the backend needs to be worthwhile.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible backends; higher wins.
	Priority int

	// Integrate evaluates rule on a validated grid.
	Integrate func(rule Rule, g Grid) float64
}

// BackendRegistry holds the vector backends and picks the best one for a CPU.
type BackendRegistry struct {
	mu      sync.RWMutex
	entries []Backend
	sorted  bool // entries sorted by priority, descending
}

// Backends is the registry used by Vector.
var Backends = &BackendRegistry{}

// Register adds a backend. All registrations should complete before the
// first Lookup.
func (r *BackendRegistry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, b)
	r.sorted = false
}

// Lookup returns the highest-priority backend compatible with features, or
// nil if none is.
func (r *BackendRegistry) Lookup(features cpu.Features) *Backend {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			b := r.entries[i]
			return &b
		}
	}
	return nil
}

// ByName returns the first backend registered under name.
func (r *BackendRegistry) ByName(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.entries {
		if b.Name == name {
			return b, true
		}
	}
	return Backend{}, false
}

// List returns a copy of the registered backends.
func (r *BackendRegistry) List() []Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Backend, len(r.entries))
	copy(out, r.entries)
	return out
}

// insertion sort, the registry holds a handful of entries.
// Must be called with r.mu held.
func (r *BackendRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
