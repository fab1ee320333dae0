package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-parallel/parallel"
)

// Multiply returns the product a·b as a new matrix.
func Multiply(a, b *Matrix) (*Matrix, error) {
	c, err := productShape(a, b)
	if err != nil {
		return nil, err
	}
	multiplyRows(a, b, c, 0, a.rows)
	return c, nil
}

// ParallelMultiply returns a·b, computing disjoint blocks of output rows on
// the workers of exec. The result equals Multiply(a, b) element for element.
func ParallelMultiply(a, b *Matrix, exec parallel.Executor) (*Matrix, error) {
	c, err := productShape(a, b)
	if err != nil {
		return nil, err
	}
	exec.ForRange(a.rows, func(_, start, end int) {
		multiplyRows(a, b, c, start, end)
	})
	return c, nil
}

func productShape(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrBadShape)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return New(a.rows, b.cols)
}

// multiplyRows fills rows [start, end) of c. The k-before-j loop order keeps
// the inner loop on contiguous rows of b and c; integer addition makes the
// result independent of the order.
func multiplyRows(a, b, c *Matrix, start, end int) {
	for i := start; i < end; i++ {
		ci := c.data[i*c.cols : (i+1)*c.cols]
		for k, aik := range a.data[i*a.cols : (i+1)*a.cols] {
			if aik == 0 {
				continue
			}
			bk := b.data[k*b.cols : (k+1)*b.cols]
			for j, bkj := range bk {
				ci[j] += aik * bkj
			}
		}
	}
}
