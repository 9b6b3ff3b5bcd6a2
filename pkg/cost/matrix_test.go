package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/posthop/pkg/cost"
)

const na = cost.NA

func exampleRows() [][]int64 {
	return [][]int64{
		{0, 2, 5, 9},
		{na, 0, 2, 6},
		{na, na, 0, 3},
		{na, na, na, 0},
	}
}

func TestFromRows_Valid(t *testing.T) {
	m, err := cost.FromRows(exampleRows())
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())

	c, err := m.Cost(1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(6), c)
	require.True(t, m.Defined(0, 3))
	require.False(t, m.Defined(3, 0))
	require.False(t, m.Defined(2, 2))
}

func TestFromRows_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want error
	}{
		{"empty", nil, cost.ErrTooSmall},
		{"single post", [][]int64{{0}}, cost.ErrTooSmall},
		{"ragged", [][]int64{{0, 1}, {na}}, cost.ErrNonSquare},
		{"wide", [][]int64{{0, 1, 2}, {na, 0, 1}}, cost.ErrNonSquare},
		{"diagonal", [][]int64{{0, 1}, {na, 4}}, cost.ErrNonZeroDiagonal},
		{"negative", [][]int64{{0, 1, 2}, {na, 0, -3}, {na, na, 0}}, cost.ErrNegativeCost},
		{"missing direct edge", [][]int64{{0, 1, na}, {na, 0, 1}, {na, na, 0}}, cost.ErrMissingDirectEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cost.FromRows(tt.rows)
			require.ErrorIs(t, err, tt.want)
			require.True(t, cost.IsMalformed(err))
		})
	}
}

func TestFromRows_IgnoresLowerTriangle(t *testing.T) {
	rows := exampleRows()
	rows[3][0] = -42
	rows[2][1] = 7
	m, err := cost.FromRows(rows)
	require.NoError(t, err)

	got := m.Rows()
	require.Equal(t, na, got[3][0])
	require.Equal(t, na, got[2][1])
	require.Equal(t, int64(0), got[1][1])
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := exampleRows()
	m, err := cost.FromRows(rows)
	require.NoError(t, err)

	rows[0][3] = 1
	c, err := m.Cost(0, 3)
	require.NoError(t, err)
	require.Equal(t, int64(9), c)

	out := m.Rows()
	out[0][1] = 100
	c, err = m.Cost(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), c)
}

func TestCost_Lookups(t *testing.T) {
	rows := exampleRows()
	rows[1][2] = na
	m, err := cost.FromRows(rows)
	require.NoError(t, err)

	_, err = m.Cost(1, 2)
	require.ErrorIs(t, err, cost.ErrUndefinedEdge)

	for _, ij := range [][2]int{{2, 1}, {1, 1}, {-1, 2}, {0, 4}} {
		_, err = m.Cost(ij[0], ij[1])
		require.ErrorIs(t, err, cost.ErrIndexOutOfRange, "cell %v", ij)
	}
}

func TestPathCost(t *testing.T) {
	m, err := cost.FromRows(exampleRows())
	require.NoError(t, err)

	got, err := m.PathCost([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(7), got)

	got, err = m.PathCost([]int{0, 3})
	require.NoError(t, err)
	require.Equal(t, int64(9), got)

	for _, p := range [][]int{nil, {0}, {1, 3}, {0, 2}, {0, 2, 1, 3}, {0, 1, 1, 3}} {
		_, err = m.PathCost(p)
		require.ErrorIs(t, err, cost.ErrInvalidPath, "path %v", p)
	}
}

func TestPathCost_Overflow(t *testing.T) {
	m, err := cost.FromRows([][]int64{
		{0, math.MaxInt64, 1},
		{na, 0, 1},
		{na, na, 0},
	})
	require.NoError(t, err)

	_, err = m.PathCost([]int{0, 1, 2})
	require.ErrorIs(t, err, cost.ErrOverflow)
	require.False(t, cost.IsMalformed(err))
}

func TestAdd(t *testing.T) {
	s, err := cost.Add(3, 4)
	require.NoError(t, err)
	require.Equal(t, int64(7), s)

	s, err = cost.Add(math.MaxInt64, 0)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), s)

	_, err = cost.Add(math.MaxInt64-1, 2)
	require.ErrorIs(t, err, cost.ErrOverflow)
}

func TestBuilder(t *testing.T) {
	b := cost.NewBuilder(3)
	require.Equal(t, na, b.Get(0, 2))
	require.Equal(t, int64(0), b.Get(1, 1))

	require.NoError(t, b.Set(0, 1, 4))
	require.NoError(t, b.Set(0, 2, 10))
	require.NoError(t, b.Set(1, 2, 5))
	require.ErrorIs(t, b.Set(2, 1, 1), cost.ErrIndexOutOfRange)
	require.ErrorIs(t, b.Set(0, 1, -1), cost.ErrNegativeCost)

	m, err := b.Build()
	require.NoError(t, err)
	got, err := m.PathCost([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, int64(9), got)

	// Later writes do not leak into a built matrix.
	require.NoError(t, b.Set(0, 1, 100))
	c, err := m.Cost(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), c)
}

func TestBuilder_TooSmall(t *testing.T) {
	_, err := cost.NewBuilder(1).Build()
	require.ErrorIs(t, err, cost.ErrTooSmall)
	_, err = cost.NewBuilder(0).Build()
	require.ErrorIs(t, err, cost.ErrTooSmall)
}

func TestBuilder_MissingDirectEdge(t *testing.T) {
	b := cost.NewBuilder(3)
	require.NoError(t, b.Set(0, 1, 1))
	require.NoError(t, b.Set(1, 2, 1))
	_, err := b.Build()
	require.ErrorIs(t, err, cost.ErrMissingDirectEdge)
}
