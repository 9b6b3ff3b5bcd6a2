package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Solved 4 tables (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports solver and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnSolveStart(_ context.Context, algorithm string, size int) {
	h.logger.Debug("solve started", "algorithm", algorithm, "size", size)
}

func (h *logHooks) OnSolveComplete(_ context.Context, algorithm string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "algorithm", algorithm, "size", size, "duration", d, "err", err)
		return
	}
	h.logger.Debug("solve finished", "algorithm", algorithm, "size", size, "duration", d)
}

func (h *logHooks) OnSolveSkipped(_ context.Context, algorithm string, size, limit int) {
	h.logger.Info("skipping solver above size limit", "algorithm", algorithm, "size", size, "limit", limit)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache write", "type", keyType, "bytes", size)
}
