package cost

import "fmt"

// Builder assembles a [Matrix] cell by cell. Every cell above the diagonal
// starts out as [NA]. A Builder is not safe for concurrent use.
type Builder struct {
	n     int
	cells []int64
}

// NewBuilder returns a Builder for n posts. Size problems are reported by
// [Builder.Build].
func NewBuilder(n int) *Builder {
	b := &Builder{n: n}
	if n > 0 {
		b.cells = make([]int64, n*n)
		for i := range b.cells {
			b.cells[i] = NA
		}
	}
	return b
}

// Set stores the cost of travelling directly from post i to post j.
// It requires 0 <= i < j < n and c >= 0.
func (b *Builder) Set(i, j int, c int64) error {
	if i < 0 || j >= b.n || i >= j {
		return fmt.Errorf("cell (%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	if c < 0 {
		return fmt.Errorf("cell (%d,%d) = %d: %w", i, j, c, ErrNegativeCost)
	}
	b.cells[i*b.n+j] = c
	return nil
}

// Get returns the value stored for cell (i, j), or [NA] if nothing was set.
// Generators use it to derive a cell from its left neighbour.
func (b *Builder) Get(i, j int) int64 {
	if i < 0 || j < 0 || i >= b.n || j >= b.n {
		return NA
	}
	if i == j {
		return 0
	}
	return b.cells[i*b.n+j]
}

// Build validates the collected cells and returns an independent Matrix.
// The Builder may keep being used afterwards.
func (b *Builder) Build() (*Matrix, error) {
	if b.n < 2 {
		return nil, ErrTooSmall
	}
	rows := make([][]int64, b.n)
	for i := range rows {
		rows[i] = b.cells[i*b.n : (i+1)*b.n]
	}
	return FromRows(rows)
}
