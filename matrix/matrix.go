package matrix

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	ErrBadShape          = errors.New("matrix: rows and cols must be positive")
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	ErrOutOfRange        = errors.New("matrix: index out of range")
)

// Matrix is a rows×cols integer matrix stored in row-major order.
type Matrix struct {
	rows, cols int
	data       []int
}

// New returns a zero rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// FromRows builds a matrix from a slice of equally long rows. The values are
// copied.
func FromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, i, len(r), m.cols)
		}
		copy(m.data[i*m.cols:], r)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Random returns a rows×cols matrix filled with values in [0, maxValue).
func Random(rows, cols, maxValue int, rng *rand.Rand) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(rng, maxValue)
	return m, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) (int, error) {
	if !m.inRange(i, j) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	return m.data[i*m.cols+j], nil
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j, v int) error {
	if !m.inRange(i, j) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Row returns row i as a slice aliasing the matrix storage.
// It panics if i is out of range.
func (m *Matrix) Row(i int) []int {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Fill overwrites every element with a value drawn from [0, maxValue).
// maxValue < 1 fills with zeros.
func (m *Matrix) Fill(rng *rand.Rand, maxValue int) {
	if maxValue < 1 {
		clear(m.data)
		return
	}
	for k := range m.data {
		m.data[k] = rng.Intn(maxValue)
	}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for k, v := range m.data {
		if o.data[k] != v {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.rows {
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Matrix) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}
