package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/posthop/pkg/cost"
)

// Result is a route from post 0 to post n-1 and its total cost.
//
// Path is strictly increasing, starts at 0 and ends at n-1. Cost equals the
// sum of the matrix cells between consecutive posts of Path. Every solver
// call returns a fresh Result owned by the caller.
type Result struct {
	Path []int `json:"path"`
	Cost int64 `json:"cost"`
}

// String renders the path as "0->2->5".
func (r Result) String() string {
	var b strings.Builder
	for i, p := range r.Path {
		if i > 0 {
			b.WriteString("->")
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// Stops returns the number of posts visited, including both ends.
func (r Result) Stops() int { return len(r.Path) }

// Validate checks r against m: the path must be well formed for m and Cost
// must equal the recomputed path cost.
func (r Result) Validate(m *cost.Matrix) error {
	got, err := m.PathCost(r.Path)
	if err != nil {
		return err
	}
	if got != r.Cost {
		return fmt.Errorf("path %s costs %d, result states %d: %w", r, got, r.Cost, cost.ErrInvalidPath)
	}
	return nil
}
