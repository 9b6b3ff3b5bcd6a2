// Package cli implements the posthop command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/internal/config"
	"github.com/matzehuels/posthop/pkg/buildinfo"
	"github.com/matzehuels/posthop/pkg/cache"
	"github.com/matzehuels/posthop/pkg/observability"
	"github.com/matzehuels/posthop/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// redisDialTimeout bounds the initial connection to a Redis cache.
	redisDialTimeout = 3 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
	limits     pipeline.Limits
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
		limits: pipeline.DefaultLimits(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "posthop finds the cheapest route along a line of posts",
		Long: `posthop computes the minimum-cost route from the first to the last post of a
cost table, where any post in between may be skipped. It solves each table with
brute force, divide and conquer, and dynamic programming, and checks that all
three agree.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/posthop/config.toml)")
	pf.IntVar(&c.limits.BruteForce, "bf-limit", c.limits.BruteForce, "largest table brute force may solve (0 = unlimited)")
	pf.IntVar(&c.limits.DivideAndConquer, "dc-limit", c.limits.DivideAndConquer, "largest table divide and conquer may solve (0 = unlimited)")
	pf.IntVar(&c.limits.Dynamic, "dp-limit", c.limits.Dynamic, "largest table dynamic programming may solve (0 = unlimited)")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("bf-limit") {
		cfg.Limits.BruteForce = c.limits.BruteForce
	}
	if flags.Changed("dc-limit") {
		cfg.Limits.DivideAndConquer = c.limits.DivideAndConquer
	}
	if flags.Changed("dp-limit") {
		cfg.Limits.Dynamic = c.limits.Dynamic
	}
	if c.noCache {
		cfg.Cache.Backend = config.BackendNone
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	hooks := &logHooks{logger: c.Logger}
	observability.SetSolverHooks(hooks)
	observability.SetCacheHooks(hooks)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context) *pipeline.Runner {
	store, keyer := c.newCache(ctx)
	return pipeline.NewRunner(store, keyer, c.Logger)
}

// newCache opens the configured backend. Failing to open a cache never fails
// a command: it logs a warning and solves without caching.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, cache.Keyer) {
	switch c.cfg.Cache.Backend {
	case config.BackendFile:
		dir, err := c.fileCacheDir()
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	case config.BackendRedis:
		rc, err := c.openRedis(ctx)
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, cache.NewScopedKeyer(nil, redisPrefix)
	}
	return cache.NewNullCache(), nil
}

// redisPrefix namespaces posthop keys in a shared Redis database.
const redisPrefix = appName + ":"

func (c *CLI) openRedis(ctx context.Context) (*cache.RedisCache, error) {
	ctx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	return cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     c.cfg.Cache.RedisAddr,
		Password: c.cfg.Cache.RedisPassword,
		DB:       c.cfg.Cache.RedisDB,
	})
}

// solveOptions builds pipeline options from the effective configuration.
func (c *CLI) solveOptions() pipeline.Options {
	return pipeline.Options{
		Limits:      c.cfg.Limits,
		CacheTTL:    c.cfg.Cache.TTL,
		Parallelism: c.cfg.Pipeline.Parallelism,
		Logger:      c.Logger,
	}
}

// =============================================================================
// Paths
// =============================================================================

func (c *CLI) fileCacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/posthop/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
