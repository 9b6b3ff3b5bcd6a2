package route

import (
	"fmt"
	"slices"

	"github.com/matzehuels/posthop/pkg/cost"
)

const (
	unreached int64 = -1 // minCost entry with no known route yet
	noPred          = -1 // predecessor of post 0
)

// Dynamic finds a cheapest route with bottom-up dynamic programming.
//
// Posts are processed in index order, which is a topological order of the
// triangular DAG. For every post j, each earlier post i is tried as the last
// stop before j and the cheapest total is kept under strict less-than, so the
// smallest i wins ties. The route is rebuilt from the predecessor table.
//
// Undefined cells are skipped. If no route reaches n-1 the error is
// [cost.ErrUndefinedEdge]; any relaxation whose sum exceeds int64 fails with
// [cost.ErrOverflow].
//
// Time O(n²), auxiliary space O(n).
func Dynamic(m *cost.Matrix) (Result, error) {
	n := m.Size()
	minCost := make([]int64, n)
	pred := make([]int, n)
	for j := range minCost {
		minCost[j] = unreached
		pred[j] = noPred
	}
	minCost[0] = 0

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if minCost[i] == unreached || !m.Defined(i, j) {
				continue
			}
			c, err := m.Cost(i, j)
			if err != nil {
				return Result{}, fmt.Errorf("dynamic: %w", err)
			}
			cand, err := cost.Add(minCost[i], c)
			if err != nil {
				return Result{}, fmt.Errorf("dynamic: relax (%d,%d): %w", i, j, err)
			}
			if minCost[j] == unreached || cand < minCost[j] {
				minCost[j] = cand
				pred[j] = i
			}
		}
	}

	last := n - 1
	if minCost[last] == unreached {
		return Result{}, fmt.Errorf("dynamic: post %d unreachable: %w", last, cost.ErrUndefinedEdge)
	}

	path := make([]int, 0, n)
	for p := last; p != noPred; p = pred[p] {
		if len(path) == n {
			return Result{}, fmt.Errorf("dynamic: predecessor chain longer than %d posts", n)
		}
		path = append(path, p)
	}
	slices.Reverse(path)
	return Result{Path: path, Cost: minCost[last]}, nil
}
