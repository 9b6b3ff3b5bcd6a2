// Package route finds the cheapest way from the first to the last post of a
// [cost.Matrix], solved three ways for comparison.
//
// # Solvers
//
//   - [BruteForce]: enumerates every subset of interior posts using an
//     arbitrary-precision counter. Θ(2ⁿ · n).
//   - [DivideAndConquer]: recursive exhaustive search without memoization.
//     Θ(2ⁿ), recursion depth at most n.
//   - [Dynamic]: bottom-up relaxation in index order with a predecessor table.
//     O(n²) time, O(n) space. This is the one to use in production.
//
// All three are pure functions of their input: they share no state, perform
// no I/O and return the same [Result.Cost] for the same matrix. When several
// routes tie, each solver may pick a different one. Only the cost is
// guaranteed to match.
//
// # Size Limits
//
// The exponential solvers have no cancellation and no built-in size ceiling.
// Callers pick a ceiling and check [Algorithm.Exponential] before calling:
//
//	if alg.Exponential() && m.Size() > limit {
//	    return skipped
//	}
//	res, err := route.Solve(alg, m)
//
// # Errors
//
// Solvers wrap the sentinels of package cost. An undefined cell reached
// during the search yields [cost.ErrUndefinedEdge]; a sum beyond int64
// yields [cost.ErrOverflow]. A failed call never returns a partial Result.
//
// [cost.Matrix]: github.com/matzehuels/posthop/pkg/cost.Matrix
package route
