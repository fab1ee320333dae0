package bench

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cwbudde/algo-parallel/comm"
	"github.com/cwbudde/algo-parallel/integrate"
	"github.com/cwbudde/algo-parallel/parallel"
)

// distState is shared by every rank hosted in this process.
type distState struct {
	hostsRoot bool
	results   []Result
	errs      map[integrate.Rule][]float64 // distributed |error| per n, in sweep order
	busy      map[int]time.Duration        // per-rank time spent in the kernel
}

// RunDistributed sweeps the configured interval counts, timing Serial on the
// coordinator against Distributed on every rank. Only the process hosting
// the coordinator writes the report.
func RunDistributed(w io.Writer, cfg DistributedConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	state := parallel.NewGuarded(distState{
		errs: make(map[integrate.Rule][]float64),
		busy: make(map[int]time.Duration),
	})
	err := comm.Launch(cfg.Ranks, func(c comm.Comm) error {
		return runRank(c, cfg.Ns, state)
	})
	if err != nil {
		return fmt.Errorf("bench: distributed demo: %w", err)
	}

	st := state.Load()
	if !st.hostsRoot {
		return nil
	}

	if _, err := fmt.Fprintf(w, "== mpi: backend=%s ranks=%d n=%v\n", comm.Backend, cfg.Ranks, cfg.Ns); err != nil {
		return err
	}
	if err := writeTable(w, st.results); err != nil {
		return err
	}
	if err := writeOrders(w, cfg.Ns, st.errs); err != nil {
		return err
	}
	return writeBusy(w, cfg.Ranks, st.busy)
}

func runRank(c comm.Comm, ns []int, state *parallel.Guarded[distState]) error {
	root := c.Rank() == integrate.Coordinator
	var busy time.Duration

	for _, n := range ns {
		for _, rule := range integrate.Rules() {
			var serial float64
			if root {
				v, d, err := timed(func() (float64, error) { return integrate.Serial(rule, n) })
				if err != nil {
					return err
				}
				serial = v
				state.Update(func(s *distState) {
					s.results = append(s.results, quadratureResult(fmt.Sprintf("%s n=%d serial", rule, n), v, d))
				})
			}

			// Start every rank together so the coordinator's time covers the
			// slowest participant rather than the serial run above.
			if err := c.Barrier(); err != nil {
				return err
			}
			v, d, err := timed(func() (float64, error) { return integrate.Distributed(c, rule, n) })
			if err != nil {
				return err
			}
			busy += d

			if root {
				state.Update(func(s *distState) {
					row := quadratureResult(fmt.Sprintf("%s n=%d distributed", rule, n), v, d)
					s.results = append(s.results, row.agreesWith(serial, v))
					s.errs[rule] = append(s.errs[rule], integrate.ErrorVsPi(v))
				})
			}
		}
	}

	state.Update(func(s *distState) {
		s.busy[c.Rank()] = busy
		if root {
			s.hostsRoot = true
		}
	})
	return nil
}

func writeOrders(w io.Writer, ns []int, errs map[integrate.Rule][]float64) error {
	if len(ns) < 2 {
		return nil
	}
	for _, rule := range integrate.Rules() {
		e := errs[rule]
		for k := 1; k < len(ns) && k < len(e); k++ {
			p := integrate.ObservedOrder(ns[k-1], e[k-1], ns[k], e[k])
			order := "n/a (noise floor)"
			if !math.IsNaN(p) && !math.IsInf(p, 0) {
				order = fmt.Sprintf("%.2f", p)
			}
			if _, err := fmt.Fprintf(w, "order %s n=%d..%d: %s\n", rule, ns[k-1], ns[k], order); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeBusy lists the kernel time of every rank hosted in this process.
func writeBusy(w io.Writer, ranks int, busy map[int]time.Duration) error {
	for r := range ranks {
		d, ok := busy[r]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "rank %d busy %.6fs\n", r, d.Seconds()); err != nil {
			return err
		}
	}
	return nil
}
