// Package generate produces random cost matrices for exercising the solvers.
//
// Two policies are available. [Independent] draws every cell on its own.
// [Cumulative] adds each draw to the cell on its left, so costs never
// decrease along a row: going further always costs at least as much.
package generate

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/posthop/pkg/cost"
)

// Policy selects how cell values are drawn.
type Policy int

const (
	// Independent draws each cell uniformly from [MinCost, MaxCost].
	Independent Policy = iota
	// Cumulative draws like Independent and adds the cell to the left in the
	// same row. The diagonal counts as 0.
	Cumulative
)

const (
	DefaultMinCost int64 = 1
	DefaultMaxCost int64 = 1000
)

// Policies returns every policy in declaration order.
func Policies() []Policy { return []Policy{Independent, Cumulative} }

// String returns the canonical lowercase name.
func (p Policy) String() string {
	switch p {
	case Independent:
		return "independent"
	case Cumulative:
		return "cumulative"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy resolves a policy name. "random" and "dependent" are accepted
// as aliases of independent and cumulative.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "independent", "random":
		return Independent, nil
	case "cumulative", "dependent":
		return Cumulative, nil
	}
	return 0, fmt.Errorf("unknown policy %q (must be 'independent' or 'cumulative')", s)
}

// Options bounds the drawn values and seeds the generator.
type Options struct {
	MinCost int64
	MaxCost int64
	// Seed makes generation reproducible. Zero draws a fresh seed from the
	// runtime's random source, so unseeded calls never repeat each other.
	Seed uint64
}

// Generate returns an n-post matrix whose cells above the diagonal are all
// defined and positive.
func Generate(n int, p Policy, opts Options) (*cost.Matrix, error) {
	if opts.MinCost == 0 && opts.MaxCost == 0 {
		opts.MinCost, opts.MaxCost = DefaultMinCost, DefaultMaxCost
	}
	if opts.MinCost < 1 || opts.MaxCost < opts.MinCost {
		return nil, fmt.Errorf("invalid cost range [%d, %d]", opts.MinCost, opts.MaxCost)
	}
	if p != Independent && p != Cumulative {
		return nil, fmt.Errorf("unknown policy %d", int(p))
	}

	seed := opts.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	b := cost.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := drawNext(p, rng, opts, b.Get(i, j-1))
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			if err := b.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

// drawNext is the single dispatch point for policies. left is the value of
// the cell to the left in the same row.
func drawNext(p Policy, rng *rand.Rand, opts Options, left int64) (int64, error) {
	v := opts.MinCost + rng.Int64N(opts.MaxCost-opts.MinCost+1)
	switch p {
	case Cumulative:
		if left == cost.NA {
			left = 0
		}
		return cost.Add(v, left)
	default:
		return v, nil
	}
}

// FileName returns the conventional file name for a saved table,
// e.g. "cumulative-cost-table-25.tsv".
func FileName(p Policy, n int) string {
	return fmt.Sprintf("%s-cost-table-%d.tsv", p, n)
}
