package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-parallel/parallel"
)

// Add returns the element-wise sum a+b.
func Add(a, b *Matrix) (*Matrix, error) {
	c, err := sumShape(a, b)
	if err != nil {
		return nil, err
	}
	addRows(a, b, c, 0, a.rows)
	return c, nil
}

// ParallelAdd returns a+b with output rows partitioned across exec.
func ParallelAdd(a, b *Matrix, exec parallel.Executor) (*Matrix, error) {
	c, err := sumShape(a, b)
	if err != nil {
		return nil, err
	}
	exec.ForRange(a.rows, func(_, start, end int) {
		addRows(a, b, c, start, end)
	})
	return c, nil
}

func sumShape(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrBadShape)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("%w: %dx%d plus %dx%d", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return New(a.rows, a.cols)
}

func addRows(a, b, c *Matrix, start, end int) {
	lo, hi := start*a.cols, end*a.cols
	for k := lo; k < hi; k++ {
		c.data[k] = a.data[k] + b.data[k]
	}
}
