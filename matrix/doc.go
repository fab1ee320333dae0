// Package matrix provides a dense row-major integer matrix with serial and
// row-parallel multiplication and addition.
//
// The parallel forms partition output rows across the workers of a
// [parallel.Executor]. Rows are disjoint, so every worker writes a private
// region of the result and the outcome is bit-identical to the serial form.
package matrix
