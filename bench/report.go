package bench

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-parallel/core"
	"github.com/cwbudde/algo-parallel/integrate"
)

// agreeTol bounds the difference between serial and parallel results of the
// same floating-point computation; only summation order differs.
const agreeTol = 1e-9

// Result is one timed case of a demo.
type Result struct {
	Case    string
	Value   string
	AbsErr  float64 // |value - π| for quadrature cases, NaN otherwise
	Check   string  // outcome of comparing against the serial baseline, if any
	Elapsed time.Duration
}

func quadratureResult(name string, v float64, elapsed time.Duration) Result {
	return Result{
		Case:    name,
		Value:   fmt.Sprintf("%.12f", v),
		AbsErr:  integrate.ErrorVsPi(v),
		Elapsed: elapsed,
	}
}

func plainResult(name, value string, elapsed time.Duration) Result {
	return Result{Case: name, Value: value, AbsErr: math.NaN(), Elapsed: elapsed}
}

// checked returns r with Check set to label=ok.
func (r Result) checked(label string, ok bool) Result {
	r.Check = fmt.Sprintf("%s=%t", label, ok)
	return r
}

// agreesWith marks r with whether par matches the serial value.
func (r Result) agreesWith(serial, par float64) Result {
	return r.checked("agree", core.NearlyEqual(serial, par, agreeTol))
}

// timed runs fn and measures its wall time on the monotonic clock.
func timed[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	v, err := fn()
	return v, time.Since(start), err
}

// writeTable writes results as an aligned table.
func writeTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Case\tResult\t|Error|\tCheck\tTime [s]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t------\t-------\t-----\t--------\n"); err != nil {
		return err
	}
	for _, r := range results {
		errCol := "-"
		if !math.IsNaN(r.AbsErr) {
			errCol = fmt.Sprintf("%.3e", r.AbsErr)
		}
		check := r.Check
		if check == "" {
			check = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.6f\n",
			r.Case, r.Value, errCol, check, core.Seconds(r.Elapsed.Nanoseconds())); err != nil {
			return err
		}
	}
	return tw.Flush()
}
