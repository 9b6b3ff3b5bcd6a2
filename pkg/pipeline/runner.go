package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/posthop/pkg/buildinfo"
	"github.com/matzehuels/posthop/pkg/cache"
	"github.com/matzehuels/posthop/pkg/cost"
	"github.com/matzehuels/posthop/pkg/errors"
	pio "github.com/matzehuels/posthop/pkg/io"
	"github.com/matzehuels/posthop/pkg/observability"
	"github.com/matzehuels/posthop/pkg/route"
)

const keyTypeResult = "result"

// Runner executes solvers with caching.
//
// The Runner holds no per-call state, so several goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Job is one matrix for SolveBatch. Source names it in the report, usually
// the file it was loaded from.
type Job struct {
	Source string
	Matrix *cost.Matrix
}

// Solve runs the selected solvers on m one after another.
//
// The returned error covers invalid options and cancellation only. Solver
// failures, including size ceilings, are recorded on the matching Outcome.
// ctx is checked between solvers; a solver that has started always runs to
// completion.
func (r *Runner) Solve(ctx context.Context, m *cost.Matrix, opts Options) (*Report, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hash, err := MatrixHash(m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash matrix")
	}
	report := &Report{
		ID:         uuid.NewString(),
		Size:       m.Size(),
		MatrixHash: hash,
		Version:    buildinfo.Short(),
		Outcomes:   make([]Outcome, 0, len(opts.Algorithms)),
	}

	for _, alg := range opts.Algorithms {
		if err := ctx.Err(); err != nil {
			return nil, Classify(err)
		}
		report.Outcomes = append(report.Outcomes, r.run(ctx, m, hash, alg, opts))
	}
	return report, nil
}

func (r *Runner) run(ctx context.Context, m *cost.Matrix, hash string, alg route.Algorithm, opts Options) Outcome {
	out := Outcome{Algorithm: alg}
	n := m.Size()
	logger := opts.Logger.With("algorithm", alg, "size", n)

	if !opts.Limits.Allows(alg, n) {
		limit := opts.Limits.For(alg)
		observability.Solver().OnSolveSkipped(ctx, string(alg), n, limit)
		out.fail(&errors.LimitExceededError{Algorithm: string(alg), Size: n, Limit: limit}, true)
		logger.Debug("skipped", "limit", limit)
		return out
	}

	key := r.Keyer.ResultKey(hash, string(alg))
	if !opts.Refresh {
		if res, ok := r.lookup(ctx, key, m); ok {
			out.Result, out.Cached = &res, true
			logger.Debug("cache hit", "cost", res.Cost)
			return out
		}
	}

	observability.Solver().OnSolveStart(ctx, string(alg), n)
	start := time.Now()
	res, err := route.Solve(alg, m)
	out.Duration = time.Since(start)
	observability.Solver().OnSolveComplete(ctx, string(alg), n, out.Duration, err)

	if err != nil {
		out.fail(Classify(err), false)
		logger.Debug("solve failed", "err", err, "duration", out.Duration)
		return out
	}
	out.Result = &res
	logger.Debug("solved", "cost", res.Cost, "stops", res.Stops(), "duration", out.Duration)

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
			logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeResult, len(data))
		}
	}
	return out
}

// lookup returns a cached result only if it still validates against m.
func (r *Runner) lookup(ctx context.Context, key string, m *cost.Matrix) (route.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeResult)
		return route.Result{}, false
	}
	var res route.Result
	if json.Unmarshal(data, &res) != nil || res.Validate(m) != nil {
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, keyTypeResult)
		return route.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeResult)
	return res, true
}

// SolveBatch solves independent matrices concurrently, at most
// opts.Parallelism at a time. Reports are returned in job order. The first
// error cancels the remaining jobs.
func (r *Runner) SolveBatch(ctx context.Context, jobs []Job, opts Options) ([]*Report, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	reports := make([]*Report, len(jobs))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, job := range jobs {
		g.Go(func() error {
			rep, err := r.Solve(gctx, job.Matrix, opts)
			if err != nil {
				return err
			}
			rep.Source = job.Source
			reports[i] = rep
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(jobs))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// MatrixHash returns the content hash of m. Two matrices with the same
// defined cells hash equally regardless of how they were loaded.
func MatrixHash(m *cost.Matrix) (string, error) {
	var buf bytes.Buffer
	if err := pio.WriteTable(m, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}
