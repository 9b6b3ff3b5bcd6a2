package cost

import "fmt"

// NA marks an undefined cell. It is written as "NA" by the table codec and
// as null by the JSON codec.
const NA int64 = -1

// Matrix is an immutable, strictly upper-triangular table of direct travel
// costs between posts 0..n-1. Cell (i, j) with i < j is the cost of going
// from post i straight to post j, skipping every post in between.
//
// The zero value is not usable. Build a Matrix with [FromRows] or [Builder].
// A Matrix is never modified after construction, so it is safe to share
// between goroutines and solver calls.
type Matrix struct {
	n     int
	cells []int64 // row-major n*n, NA for undefined cells and i > j
}

// FromRows validates rows and returns a Matrix that owns a copy of them.
//
// Cells with i > j are ignored. Cells with i < j must be non-negative or [NA];
// the (0, n-1) cell must be defined. Diagonal cells must be 0 or [NA].
//
// Validation runs in a fixed order and returns the first failure:
// [ErrTooSmall], [ErrNonSquare], [ErrNonZeroDiagonal], [ErrNegativeCost],
// [ErrMissingDirectEdge]. Errors name the offending cell.
func FromRows(rows [][]int64) (*Matrix, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrTooSmall
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	m := &Matrix{n: n, cells: make([]int64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rows[i][j]
			switch {
			case i > j:
				v = NA
			case i == j:
				if v != 0 && v != NA {
					return nil, fmt.Errorf("cell (%d,%d) = %d: %w", i, j, v, ErrNonZeroDiagonal)
				}
				v = 0
			case v < 0 && v != NA:
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", i, j, v, ErrNegativeCost)
			}
			m.cells[i*n+j] = v
		}
	}
	if m.cells[n-1] == NA {
		return nil, fmt.Errorf("cell (0,%d): %w", n-1, ErrMissingDirectEdge)
	}
	return m, nil
}

// Size returns the number of posts n.
func (m *Matrix) Size() int { return m.n }

// Cost returns the direct cost from post i to post j.
// It returns [ErrIndexOutOfRange] unless 0 <= i < j < n, and
// [ErrUndefinedEdge] when the cell is [NA].
func (m *Matrix) Cost(i, j int) (int64, error) {
	if i < 0 || j >= m.n || i >= j {
		return 0, fmt.Errorf("cell (%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	v := m.cells[i*m.n+j]
	if v == NA {
		return 0, fmt.Errorf("cell (%d,%d): %w", i, j, ErrUndefinedEdge)
	}
	return v, nil
}

// Defined reports whether cell (i, j) holds a usable cost.
func (m *Matrix) Defined(i, j int) bool {
	if i < 0 || j >= m.n || i >= j {
		return false
	}
	return m.cells[i*m.n+j] != NA
}

// Rows returns a deep copy of the matrix. The diagonal is 0 and cells with
// i > j, as well as undefined cells above the diagonal, are [NA].
func (m *Matrix) Rows() [][]int64 {
	rows := make([][]int64, m.n)
	for i := range rows {
		rows[i] = make([]int64, m.n)
		copy(rows[i], m.cells[i*m.n:(i+1)*m.n])
	}
	return rows
}

// PathCost sums the direct costs between consecutive posts of path.
//
// The path must start at 0, end at n-1 and be strictly increasing, otherwise
// PathCost returns [ErrInvalidPath]. Undefined cells yield [ErrUndefinedEdge]
// and sums beyond int64 yield [ErrOverflow].
func (m *Matrix) PathCost(path []int) (int64, error) {
	if len(path) < 2 || path[0] != 0 || path[len(path)-1] != m.n-1 {
		return 0, fmt.Errorf("path %v must run from 0 to %d: %w", path, m.n-1, ErrInvalidPath)
	}
	var total int64
	for k := 1; k < len(path); k++ {
		if path[k] <= path[k-1] {
			return 0, fmt.Errorf("path %v is not strictly increasing at %d: %w", path, k, ErrInvalidPath)
		}
		c, err := m.Cost(path[k-1], path[k])
		if err != nil {
			return 0, err
		}
		if total, err = Add(total, c); err != nil {
			return 0, err
		}
	}
	return total, nil
}
