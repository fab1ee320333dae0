package integrate

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	vectorImpl     Backend
	vectorInitOnce sync.Once
)

func initVectorBackend() {
	b := Backends.Lookup(cpu.DetectFeatures())
	if b == nil {
		panic("integrate: no vector backend registered")
	}
	vectorImpl = *b
}

// Vector evaluates rule with n intervals using the data-parallel backend
// selected for this CPU.
func Vector(rule Rule, n int) (float64, error) {
	g, err := NewGrid(rule, n)
	if err != nil {
		return 0, err
	}
	vectorInitOnce.Do(initVectorBackend)
	return vectorImpl.Integrate(rule, g), nil
}

// VectorBackend returns the name of the backend Vector dispatches to.
func VectorBackend() string {
	vectorInitOnce.Do(initVectorBackend)
	return vectorImpl.Name
}

// VectorWith evaluates rule with the named backend.
func VectorWith(backend string, rule Rule, n int) (float64, error) {
	b, ok := Backends.ByName(backend)
	if !ok {
		return 0, fmt.Errorf("integrate: unknown vector backend %q", backend)
	}
	g, err := NewGrid(rule, n)
	if err != nil {
		return 0, err
	}
	return b.Integrate(rule, g), nil
}
