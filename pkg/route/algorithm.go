package route

import (
	"fmt"
	"strings"

	"github.com/matzehuels/posthop/pkg/cost"
)

// Algorithm names one of the three solvers.
type Algorithm string

const (
	AlgorithmBruteForce       Algorithm = "brute-force"
	AlgorithmDivideAndConquer Algorithm = "divide-and-conquer"
	AlgorithmDynamic          Algorithm = "dynamic"
)

// SolveFunc is the signature shared by every solver.
type SolveFunc func(*cost.Matrix) (Result, error)

// Algorithms returns every algorithm, exponential ones first.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBruteForce, AlgorithmDivideAndConquer, AlgorithmDynamic}
}

var aliases = map[string]Algorithm{
	"bf":                 AlgorithmBruteForce,
	"brute":              AlgorithmBruteForce,
	"brute-force":        AlgorithmBruteForce,
	"dc":                 AlgorithmDivideAndConquer,
	"divide-conquer":     AlgorithmDivideAndConquer,
	"divide-and-conquer": AlgorithmDivideAndConquer,
	"dp":                 AlgorithmDynamic,
	"dynamic":            AlgorithmDynamic,
}

// ParseAlgorithm resolves a name or short alias (bf, dc, dp), ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown algorithm %q (must be one of: bf, dc, dp)", s)
}

// Func returns the solver for a, or nil if a is unknown.
func (a Algorithm) Func() SolveFunc {
	switch a {
	case AlgorithmBruteForce:
		return BruteForce
	case AlgorithmDivideAndConquer:
		return DivideAndConquer
	case AlgorithmDynamic:
		return Dynamic
	}
	return nil
}

// Exponential reports whether the solver's running time grows as 2ⁿ. Callers
// should apply a size ceiling before running such solvers.
func (a Algorithm) Exponential() bool {
	return a == AlgorithmBruteForce || a == AlgorithmDivideAndConquer
}

// Label returns a human-readable name.
func (a Algorithm) Label() string {
	switch a {
	case AlgorithmBruteForce:
		return "Brute Force"
	case AlgorithmDivideAndConquer:
		return "Divide and Conquer"
	case AlgorithmDynamic:
		return "Dynamic Programming"
	}
	return string(a)
}

// Solve runs the solver named by a on m.
func Solve(a Algorithm, m *cost.Matrix) (Result, error) {
	fn := a.Func()
	if fn == nil {
		return Result{}, fmt.Errorf("unknown algorithm %q", string(a))
	}
	return fn(m)
}
