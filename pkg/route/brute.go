package route

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/matzehuels/posthop/pkg/cost"
)

// BruteForce finds a cheapest route by enumerating every subset of the
// interior posts 1..n-2 and pricing the route each subset induces.
//
// Subsets are encoded in an arbitrary-precision counter, so n is not capped
// by the machine word size. Bit j of the counter set means interior post j
// is visited. The counter walks the odd values of [2^(n-1), 2^n) in steps of
// two: bit n-1 and bit 0 stay set and bits 1..n-2 run through all 2^(n-2)
// combinations exactly once. The first cheapest subset met in that order
// wins ties.
//
// Runtime is Θ(2ⁿ · n). Callers must keep n small. Any undefined cell on a
// priced route fails the call with [cost.ErrUndefinedEdge] and sums beyond
// int64 with [cost.ErrOverflow].
func BruteForce(m *cost.Matrix) (Result, error) {
	n := m.Size()
	counter := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	if counter.Bit(0) == 0 {
		counter.Add(counter, big.NewInt(1))
	}
	step := big.NewInt(2)

	var (
		best     []int
		bestCost int64
		found    bool
		buf      = make([]int, 0, n)
	)
	// counter stays >= 2^(n-1), so BitLen() == n means counter < 2^n.
	for ; counter.BitLen() == n; counter.Add(counter, step) {
		path := subsetPath(counter, n, buf[:0])
		total, err := m.PathCost(path)
		if err != nil {
			return Result{}, fmt.Errorf("brute force: subset %s: %w", counter.Text(2), err)
		}
		if !found || total < bestCost {
			best, bestCost, found = slices.Clone(path), total, true
		}
		buf = path
	}
	if !found {
		return Result{}, fmt.Errorf("brute force: no subset enumerated for %d posts", n)
	}
	return Result{Path: best, Cost: bestCost}, nil
}

// subsetPath appends to buf the route encoded by mask: post 0, every interior
// post j with bit j set in increasing order, then post n-1.
func subsetPath(mask *big.Int, n int, buf []int) []int {
	buf = append(buf, 0)
	for j := 1; j < n-1; j++ {
		if mask.Bit(j) == 1 {
			buf = append(buf, j)
		}
	}
	return append(buf, n-1)
}
