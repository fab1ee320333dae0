package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadShape(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := New(shape[0], shape[1])
		assert.ErrorIs(t, err, ErrBadShape, "shape %v", shape)
	}
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []int{4, 5, 6}, m.Row(1))

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestFromRowsCopies(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m, err := FromRows(src)
	require.NoError(t, err)
	src[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAtSet(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "At%v", ij)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 1), ErrOutOfRange, "Set%v", ij)
	}
}

func TestRowPanicsOutOfRange(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { m.Row(2) })
}

func TestIdentity(t *testing.T) {
	id, err := Identity(3)
	require.NoError(t, err)
	assert.Equal(t, "1 0 0\n0 1 0\n0 0 1\n", id.String())

	_, err = Identity(0)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestFillRange(t *testing.T) {
	m, err := Random(20, 30, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for i := range m.Rows() {
		for _, v := range m.Row(i) {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 10)
		}
	}

	m.Fill(rand.New(rand.NewSource(1)), 0)
	zero, err := New(20, 30)
	require.NoError(t, err)
	assert.True(t, m.Equal(zero))
}

func TestFillDeterministicForSeed(t *testing.T) {
	a, err := Random(5, 5, 100, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Random(5, 5, 100, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEqual(t *testing.T) {
	a, _ := FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := FromRows([][]int{{1, 2}, {3, 4}})
	c, _ := FromRows([][]int{{1, 2, 3, 4}})
	d, _ := FromRows([][]int{{1, 2}, {3, 5}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	var n *Matrix
	assert.True(t, n.Equal(nil))
}
