package bench

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-parallel/integrate"
)

// RunVector times Serial against the dispatched Vector for every rule, then
// runs each remaining registered backend for comparison.
func RunVector(w io.Writer, cfg VectorConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	selected := integrate.VectorBackend()
	names := backendNames(integrate.Backends.List())
	if _, err := fmt.Fprintf(w, "== simd: n=%d cpu=%s dispatch=%s backends=%s\n",
		cfg.N, describeFeatures(cpu.DetectFeatures()), selected, strings.Join(names, ",")); err != nil {
		return err
	}

	var results []Result
	for _, rule := range integrate.Rules() {
		serial, d, err := timed(func() (float64, error) { return integrate.Serial(rule, cfg.N) })
		if err != nil {
			return fmt.Errorf("bench: serial %s: %w", rule, err)
		}
		results = append(results, quadratureResult(rule.String()+" serial", serial, d))

		v, d, err := timed(func() (float64, error) { return integrate.Vector(rule, cfg.N) })
		if err != nil {
			return fmt.Errorf("bench: vector %s: %w", rule, err)
		}
		results = append(results, quadratureResult(rule.String()+" vector", v, d).agreesWith(serial, v))

		for _, name := range names {
			if name == selected {
				continue
			}
			v, d, err := timed(func() (float64, error) { return integrate.VectorWith(name, rule, cfg.N) })
			if err != nil {
				return fmt.Errorf("bench: vector %s %s: %w", name, rule, err)
			}
			row := fmt.Sprintf("%s vector[%s]", rule, name)
			results = append(results, quadratureResult(row, v, d).agreesWith(serial, v))
		}
	}
	return writeTable(w, results)
}

// backendNames returns the distinct backend names in registry order.
func backendNames(backends []integrate.Backend) []string {
	var names []string
	for _, b := range backends {
		if !slices.Contains(names, b.Name) {
			names = append(names, b.Name)
		}
	}
	return names
}

func describeFeatures(f cpu.Features) string {
	var flags []string
	for _, kv := range []struct {
		name string
		on   bool
	}{
		{"sse2", f.HasSSE2},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	} {
		if kv.on {
			flags = append(flags, kv.name)
		}
	}
	if f.ForceGeneric || len(flags) == 0 {
		flags = []string{"generic"}
	}
	return f.Architecture + "/" + strings.Join(flags, "+")
}
