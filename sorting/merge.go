package sorting

import (
	"math/bits"
	"sync"
)

// insertionCutoff is the run length below which merge sort falls back to
// insertion sort.
const insertionCutoff = 32

// ParallelMergeSort sorts xs in place into non-decreasing order, running the
// top log2(workers) levels of the recursion concurrently. The two halves of
// every split are disjoint, so no synchronization beyond the join is needed.
func ParallelMergeSort(xs []int, workers int) {
	if len(xs) < 2 {
		return
	}
	depth := bits.Len(uint(max(workers, 1) - 1))
	buf := make([]int, len(xs))
	mergeSort(xs, buf, depth)
}

func mergeSort(xs, buf []int, depth int) {
	if len(xs) <= insertionCutoff {
		insertionSort(xs)
		return
	}

	mid := len(xs) / 2
	if depth > 0 {
		var wg sync.WaitGroup
		wg.Go(func() {
			mergeSort(xs[:mid], buf[:mid], depth-1)
		})
		mergeSort(xs[mid:], buf[mid:], depth-1)
		wg.Wait()
	} else {
		mergeSort(xs[:mid], buf[:mid], 0)
		mergeSort(xs[mid:], buf[mid:], 0)
	}

	merge(xs, mid, buf)
}

// merge combines the sorted runs xs[:mid] and xs[mid:] through buf.
func merge(xs []int, mid int, buf []int) {
	if xs[mid-1] <= xs[mid] {
		return
	}

	copy(buf, xs)
	i, j, k := 0, mid, 0
	for i < mid && j < len(xs) {
		if buf[j] < buf[i] {
			xs[k] = buf[j]
			j++
		} else {
			xs[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(xs[k:], buf[i:mid])
	copy(xs[k:], buf[j:len(xs)])
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}
