// Package sorting holds the comparison-sort kernels of the threaded demo.
//
// SelectionSort is the serial O(n²) baseline. ParallelSelectionSort splits the
// outer loop of the same algorithm across workers, exactly as a parallel-for
// over that loop would. Selection sort's outer iterations are not independent
// (iteration i's swap can move elements iteration i+1 is scanning), so the
// parallel form is NOT guaranteed to produce sorted output, nor even a
// permutation of the input. It exists to measure and demonstrate that hazard.
//
// ParallelMergeSort is a correct parallel alternative with the same contract
// as SelectionSort.
package sorting
