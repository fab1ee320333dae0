package bench

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/cwbudde/algo-parallel/core"
	"github.com/cwbudde/algo-parallel/integrate"
	"github.com/cwbudde/algo-parallel/matrix"
	"github.com/cwbudde/algo-parallel/parallel"
	"github.com/cwbudde/algo-parallel/sorting"
)

// RunThreads times the serial and multi-threaded forms of quadrature,
// reduction, selection sort and matrix arithmetic on one worker pool.
func RunThreads(w io.Writer, cfg ThreadConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	pool := parallel.New(
		core.WithWorkers(cfg.Workers),
		core.WithSchedule(cfg.Schedule),
		core.WithChunkSize(cfg.ChunkSize),
	)
	run := pool.Config()
	seed := cfg.seed()
	rng := rand.New(rand.NewSource(seed))

	if _, err := fmt.Fprintf(w, "== threads: n=%d workers=%d schedule=%s chunk=%d seed=%d\n",
		cfg.N, run.Workers, run.Schedule, run.ChunkSize, seed); err != nil {
		return err
	}

	results, err := threadQuadrature(cfg.N, pool)
	if err != nil {
		return err
	}

	input := make([]int, cfg.SortLen)
	for i := range input {
		input[i] = rng.Intn(cfg.SortMax)
	}
	results = append(results, threadReduce(cfg, input)...)
	results = append(results, threadSort(input, pool)...)

	mm, err := threadMatrix(cfg, pool, rng)
	if err != nil {
		return err
	}
	results = append(results, mm...)

	return writeTable(w, results)
}

func threadQuadrature(n int, pool *parallel.Pool) ([]Result, error) {
	var results []Result
	for _, rule := range integrate.Rules() {
		serial, d, err := timed(func() (float64, error) { return integrate.Serial(rule, n) })
		if err != nil {
			return nil, fmt.Errorf("bench: serial %s: %w", rule, err)
		}
		results = append(results, quadratureResult(rule.String()+" serial", serial, d))

		v, d, err := timed(func() (float64, error) { return integrate.Threaded(rule, n, pool) })
		if err != nil {
			return nil, fmt.Errorf("bench: threaded %s: %w", rule, err)
		}
		results = append(results, quadratureResult(rule.String()+" threaded", v, d).agreesWith(serial, v))
	}
	return results, nil
}

// threadReduce sums the sort input and multiplies factors derived from it,
// once by a serial Fold and once by the barrier-synchronized Reduce. The
// factors stay within 1±5e-4 so the product neither overflows nor vanishes.
func threadReduce(cfg ThreadConfig, input []int) []Result {
	values := make([]float64, len(input))
	factors := make([]float64, len(input))
	for i, v := range input {
		values[i] = float64(v)
		factors[i] = 1 + (float64(v)/float64(cfg.SortMax)-0.5)*1e-3
	}

	var results []Result
	for _, c := range []struct {
		op   parallel.Op
		data []float64
	}{
		{parallel.OpSum, values},
		{parallel.OpProduct, factors},
	} {
		serial, ds, _ := timed(func() (float64, error) { return parallel.Fold(c.data, c.op), nil })
		par, dp, _ := timed(func() (float64, error) {
			return parallel.Reduce(c.data, c.op, core.WithWorkers(cfg.Workers)), nil
		})
		results = append(results,
			plainResult("reduce "+c.op.String()+" serial", fmt.Sprintf("%.9g", serial), ds),
			plainResult("reduce "+c.op.String()+" threaded", fmt.Sprintf("%.9g", par), dp).agreesWith(serial, par),
		)
	}
	return results
}

func threadSort(input []int, pool *parallel.Pool) []Result {
	run := func(name string, sort func([]int)) Result {
		xs := slices.Clone(input)
		_, d, _ := timed(func() (struct{}, error) {
			sort(xs)
			return struct{}{}, nil
		})
		return plainResult(name, fmt.Sprintf("len=%d", len(xs)), d).checked("sorted", slices.IsSorted(xs))
	}

	return []Result{
		run("selection sort serial", sorting.SelectionSort),
		run("selection sort threaded", func(xs []int) { sorting.ParallelSelectionSort(xs, pool) }),
		run("merge sort threaded", func(xs []int) { sorting.ParallelMergeSort(xs, pool.Workers()) }),
	}
}

func threadMatrix(cfg ThreadConfig, pool *parallel.Pool, rng *rand.Rand) ([]Result, error) {
	a, err := matrix.Random(cfg.MatrixSize, cfg.MatrixSize, cfg.MatrixMax, rng)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	b, err := matrix.Random(cfg.MatrixSize, cfg.MatrixSize, cfg.MatrixMax, rng)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	shape := fmt.Sprintf("%dx%d", cfg.MatrixSize, cfg.MatrixSize)

	var results []Result
	for _, op := range []struct {
		name     string
		serial   func(a, b *matrix.Matrix) (*matrix.Matrix, error)
		parallel func(a, b *matrix.Matrix, exec parallel.Executor) (*matrix.Matrix, error)
	}{
		{"matadd", matrix.Add, matrix.ParallelAdd},
		{"matmul", matrix.Multiply, matrix.ParallelMultiply},
	} {
		serial, ds, err := timed(func() (*matrix.Matrix, error) { return op.serial(a, b) })
		if err != nil {
			return nil, fmt.Errorf("bench: %s: %w", op.name, err)
		}
		par, dp, err := timed(func() (*matrix.Matrix, error) { return op.parallel(a, b, pool) })
		if err != nil {
			return nil, fmt.Errorf("bench: parallel %s: %w", op.name, err)
		}
		results = append(results,
			plainResult(op.name+" serial", shape, ds),
			plainResult(op.name+" threaded", shape, dp).checked("equal", serial.Equal(par)),
		)
	}
	return results, nil
}
