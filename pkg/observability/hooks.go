// Package observability provides hooks for metrics, tracing, and logging.
//
// Solvers are pure functions and never report anything themselves. The
// pipeline that drives them emits events through the hooks registered here,
// so a front end can attach logging or metrics without the pipeline
// importing a backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks around each solver run:
//
//	observability.Solver().OnSolveStart(ctx, "dynamic", n)
//	// ... solve ...
//	observability.Solver().OnSolveComplete(ctx, "dynamic", n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SolverHooks receives events from solver runs.
type SolverHooks interface {
	OnSolveStart(ctx context.Context, algorithm string, size int)
	OnSolveComplete(ctx context.Context, algorithm string, size int, duration time.Duration, err error)

	// OnSolveSkipped records a run refused because size exceeds limit.
	OnSolveSkipped(ctx context.Context, algorithm string, size, limit int)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, string, int)                          {}
func (NoopSolverHooks) OnSolveComplete(context.Context, string, int, time.Duration, error) {}
func (NoopSolverHooks) OnSolveSkipped(context.Context, string, int, int)                   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	solverHooks SolverHooks = NoopSolverHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSolverHooks registers custom solver hooks. A nil argument is ignored.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil argument is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	cacheHooks = NoopCacheHooks{}
}
