package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-parallel/comm"
)

// Demo is one entry of the built-in benchmark set.
type Demo struct {
	Name        string
	Description string

	// Collective demos coordinate through comm.Launch and print from rank 0
	// only. The others print from every process that runs them.
	Collective bool

	Run func(w io.Writer, cfg Config) error
}

var demos = []Demo{
	{
		Name:        "simd",
		Description: "serial vs. data-parallel quadrature",
		Run:         func(w io.Writer, cfg Config) error { return RunVector(w, cfg.Vector) },
	},
	{
		Name:        "threads",
		Description: "serial vs. multi-threaded quadrature, reduction, selection sort and matrix arithmetic",
		Run:         func(w io.Writer, cfg Config) error { return RunThreads(w, cfg.Threads) },
	},
	{
		Name:        "mpi",
		Description: "serial vs. distributed quadrature over an n sweep",
		Collective:  true,
		Run:         func(w io.Writer, cfg Config) error { return RunDistributed(w, cfg.Distributed) },
	},
}

// Demos returns the benchmark set in run order.
func Demos() []Demo {
	return append([]Demo(nil), demos...)
}

// Lookup returns the demo with the given name, ignoring case.
func Lookup(name string) (Demo, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Run executes the named demos in order, or the default set when names is
// empty. It stops at the first failing demo.
//
// With the mpi communicator backend every process of the job runs Run, so
// only collective demos are allowed there: the default set shrinks to them
// and naming another demo is an error.
func Run(w io.Writer, cfg Config, names ...string) error {
	selected, err := selectDemos(names, comm.Backend)
	if err != nil {
		return err
	}

	for _, d := range selected {
		if err := d.Run(w, cfg); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return nil
}

func selectDemos(names []string, backend string) ([]Demo, error) {
	perProcess := backend == "mpi"

	if len(names) == 0 {
		var out []Demo
		for _, d := range demos {
			if d.Collective || !perProcess {
				out = append(out, d)
			}
		}
		return out, nil
	}

	out := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown demo %q", ErrInvalidConfig, name)
		}
		if perProcess && !d.Collective {
			return nil, fmt.Errorf("%w: demo %q would run on every %s process; build without the mpi tag to run it",
				ErrInvalidConfig, d.Name, backend)
		}
		out = append(out, d)
	}
	return out, nil
}
