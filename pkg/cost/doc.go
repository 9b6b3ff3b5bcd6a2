// Package cost models the triangular table of travel costs between posts.
//
// # Overview
//
// Posts are numbered 0..n-1. Post 0 is where every route starts and post
// n-1 is where it ends. Travel only goes forward: the cell (i, j) with i < j
// is the cost of going from post i directly to post j, skipping everything in
// between. Cells on or below the diagonal carry no meaning.
//
// A [Matrix] is validated once, when it is built with [FromRows] or
// [Builder.Build], and is immutable afterwards:
//
//	m, err := cost.FromRows([][]int64{
//	    {0, 2, 5, 9},
//	    {cost.NA, 0, 2, 6},
//	    {cost.NA, cost.NA, 0, 3},
//	    {cost.NA, cost.NA, cost.NA, 0},
//	})
//
// # Undefined Cells
//
// Any cell above the diagonal except (0, n-1) may be [NA]. Lookups of such a
// cell fail with [ErrUndefinedEdge]. The direct edge (0, n-1) must always be
// defined so that at least one route exists.
//
// # Errors
//
// Input defects are reported with the sentinels in errors.go and can be
// grouped with [IsMalformed]. Cost sums that exceed int64 are reported with
// [ErrOverflow], which [IsMalformed] does not match.
package cost
