package route

import (
	"errors"
	"fmt"

	"github.com/matzehuels/posthop/pkg/cost"
)

// ErrDepthExceeded is returned if the recursive search goes deeper than the
// number of posts. Every call moves to a strictly larger post, so this only
// fires on a broken invariant.
var ErrDepthExceeded = errors.New("recursion deeper than number of posts")

// DivideAndConquer finds a cheapest route by exhaustive top-down recursion.
//
// From the current post every later post k is tried as the next stop, the
// best route from k to the end is solved recursively, and the cheapest
// candidate is kept under strict less-than, so the smallest k wins ties.
// Nothing is memoized: overlapping subproblems are solved again each time
// they come up, which makes the search Θ(2ⁿ) against the O(n²) of [Dynamic].
//
// Recursion depth is at most n. Callers must keep n small; the function has
// no cancellation of its own. Any undefined cell on the way fails the call
// with [cost.ErrUndefinedEdge] and sums beyond int64 with [cost.ErrOverflow].
func DivideAndConquer(m *cost.Matrix) (Result, error) {
	s := searcher{m: m, last: m.Size() - 1}
	path, total, err := s.solve(0, 0, 1)
	if err != nil {
		return Result{}, fmt.Errorf("divide and conquer: %w", err)
	}
	return Result{Path: path, Cost: total}, nil
}

type searcher struct {
	m    *cost.Matrix
	last int
}

// solve returns the cheapest path from current to the last post, given that
// acc has already been spent to reach current. depth counts active frames.
func (s searcher) solve(current int, acc int64, depth int) ([]int, int64, error) {
	if depth > s.last+1 {
		return nil, 0, fmt.Errorf("post %d at depth %d: %w", current, depth, ErrDepthExceeded)
	}
	if current == s.last {
		return []int{current}, acc, nil
	}

	var (
		best     []int
		bestCost int64
		found    bool
	)
	for k := current + 1; k <= s.last; k++ {
		c, err := s.m.Cost(current, k)
		if err != nil {
			return nil, 0, err
		}
		next, err := cost.Add(acc, c)
		if err != nil {
			return nil, 0, fmt.Errorf("edge (%d,%d): %w", current, k, err)
		}
		path, total, err := s.solve(k, next, depth+1)
		if err != nil {
			return nil, 0, err
		}
		if !found || total < bestCost {
			best, bestCost, found = path, total, true
		}
	}
	return append([]int{current}, best...), bestCost, nil
}
