package sorting

import (
	"sync/atomic"

	"github.com/cwbudde/algo-parallel/parallel"
)

// SelectionSort sorts xs in place into non-decreasing order.
func SelectionSort(xs []int) {
	n := len(xs)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if xs[j] < xs[minIdx] {
				minIdx = j
			}
		}
		xs[i], xs[minIdx] = xs[minIdx], xs[i]
	}
}

// ParallelSelectionSort runs the outer selection loop on exec without any
// ordering between iterations. See the package documentation: the output is
// not guaranteed to be sorted.
//
// Elements live in atomic cells while the workers run, so concurrent
// iterations interleave at element granularity without a memory-model data
// race. The swap itself is two independent stores.
func ParallelSelectionSort(xs []int, exec parallel.Executor) {
	n := len(xs)
	if n < 2 {
		return
	}

	cells := make([]atomic.Int64, n)
	for i, v := range xs {
		cells[i].Store(int64(v))
	}

	exec.ForRange(n-1, func(_, start, end int) {
		for i := start; i < end; i++ {
			minIdx := i
			for j := i + 1; j < n; j++ {
				if cells[j].Load() < cells[minIdx].Load() {
					minIdx = j
				}
			}
			a, b := cells[i].Load(), cells[minIdx].Load()
			cells[i].Store(b)
			cells[minIdx].Store(a)
		}
	})

	for i := range xs {
		xs[i] = int(cells[i].Load())
	}
}
