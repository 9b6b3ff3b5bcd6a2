// Package pipeline runs the route solvers over cost matrices the way the CLI
// needs them run.
//
// The solvers in package route are bare functions. This package adds what a
// front end wants around them:
//
//   - per-algorithm size ceilings, so an exponential solver is skipped rather
//     than left running for hours on a 60-post table
//   - a result cache keyed by matrix content and algorithm
//   - timing of every run and a check that all solvers agree on the cost
//   - bounded parallel solving of independent matrices
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	report, err := runner.Solve(ctx, m, pipeline.Options{
//	    Algorithms: route.Algorithms(),
//	    Limits:     pipeline.DefaultLimits(),
//	})
//	if err != nil {
//	    return err
//	}
//	if err := report.Agreement(); err != nil {
//	    // two solvers disagree on the minimum cost
//	}
//
// A solver that fails or is skipped does not fail the call. Its outcome
// carries the classified error instead, so one bad run never hides the
// others.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/posthop/pkg/cache"
	"github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/route"
)

// Default values shared by the CLI and the configuration file.
const (
	// DefaultBruteForceLimit and DefaultDivideConquerLimit keep the
	// exponential solvers to a few seconds each.
	DefaultBruteForceLimit    = 25
	DefaultDivideConquerLimit = 25

	// DefaultDynamicLimit leaves the quadratic solver unbounded.
	DefaultDynamicLimit = 0

	// DefaultParallelism is the number of matrices solved at once by SolveBatch.
	DefaultParallelism = 4
)

// Limits holds the largest matrix size each solver may run on.
// Zero means no limit.
type Limits struct {
	BruteForce       int `json:"brute_force" toml:"brute_force"`
	DivideAndConquer int `json:"divide_conquer" toml:"divide_conquer"`
	Dynamic          int `json:"dynamic" toml:"dynamic"`
}

// DefaultLimits returns the ceilings used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		BruteForce:       DefaultBruteForceLimit,
		DivideAndConquer: DefaultDivideConquerLimit,
		Dynamic:          DefaultDynamicLimit,
	}
}

// For returns the limit for a.
func (l Limits) For(a route.Algorithm) int {
	switch a {
	case route.AlgorithmBruteForce:
		return l.BruteForce
	case route.AlgorithmDivideAndConquer:
		return l.DivideAndConquer
	case route.AlgorithmDynamic:
		return l.Dynamic
	}
	return 0
}

// Allows reports whether a may run on n posts.
func (l Limits) Allows(a route.Algorithm, n int) bool {
	limit := l.For(a)
	return limit == 0 || n <= limit
}

// Validate rejects negative limits.
func (l Limits) Validate() error {
	for _, a := range route.Algorithms() {
		if err := errors.ValidateLimit(string(a), l.For(a)); err != nil {
			return err
		}
	}
	return nil
}

// Options configures a Solve or SolveBatch call.
type Options struct {
	// Algorithms to run, in order. Empty means all of them.
	Algorithms []route.Algorithm `json:"algorithms,omitempty"`

	// Limits are the per-solver size ceilings. The zero value runs every
	// solver at any size; use DefaultLimits for the CLI defaults.
	Limits Limits `json:"limits"`

	// CacheTTL is the lifetime of cached results. Zero means cache.TTLResult.
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// Refresh ignores cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Parallelism bounds SolveBatch. Zero means DefaultParallelism.
	Parallelism int `json:"parallelism,omitempty"`

	// Logger defaults to the runner's logger.
	Logger *log.Logger `json:"-"`

	// Progress, when set, is called by SolveBatch after each finished job
	// with the number of jobs done so far. It may be called concurrently.
	Progress func(done, total int) `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Algorithms) == 0 {
		o.Algorithms = route.Algorithms()
	}
	seen := make(map[route.Algorithm]bool, len(o.Algorithms))
	for _, a := range o.Algorithms {
		if a.Func() == nil {
			return errors.New(errors.ErrCodeInvalidInput, "unknown algorithm %q", string(a))
		}
		if seen[a] {
			return errors.New(errors.ErrCodeInvalidInput, "algorithm %q listed twice", string(a))
		}
		seen[a] = true
	}
	if err := o.Limits.Validate(); err != nil {
		return err
	}
	if o.Parallelism < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "parallelism cannot be negative, got %d", o.Parallelism)
	}
	if o.Parallelism == 0 {
		o.Parallelism = DefaultParallelism
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = cache.TTLResult
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ParseAlgorithms resolves a list of names or aliases such as
// []string{"bf", "dp"}.
func ParseAlgorithms(names []string) ([]route.Algorithm, error) {
	out := make([]route.Algorithm, 0, len(names))
	for _, n := range names {
		a, err := route.ParseAlgorithm(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse algorithms")
		}
		out = append(out, a)
	}
	return out, nil
}

// String renders the limits as "bf≤25 dc≤25 dp≤∞".
func (l Limits) String() string {
	f := func(v int) string {
		if v == 0 {
			return "∞"
		}
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("bf≤%s dc≤%s dp≤%s", f(l.BruteForce), f(l.DivideAndConquer), f(l.Dynamic))
}
