// Package config loads posthop settings from a TOML file.
//
// The file is optional. Every field has a default, and command-line flags
// override whatever the file sets. A complete file looks like:
//
//	[limits]
//	brute_force = 25
//	divide_conquer = 25
//	dynamic = 0          # 0 = unlimited
//
//	[generate]
//	min_cost = 1
//	max_cost = 1000
//	seed = 0             # 0 = random per table
//	output_dir = "."
//
//	[cache]
//	backend = "file"     # file, redis or none
//	ttl = "720h"
//	dir = ""             # default: $XDG_CACHE_HOME/posthop
//	redis_addr = "localhost:6379"
//	redis_db = 0
//
//	[pipeline]
//	parallelism = 4
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/posthop/pkg/cache"
	perrors "github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/generate"
	"github.com/matzehuels/posthop/pkg/pipeline"
)

// AppName names the config and cache directories.
const AppName = "posthop"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full configuration.
type Config struct {
	Limits   pipeline.Limits `toml:"limits"`
	Generate Generate        `toml:"generate"`
	Cache    Cache           `toml:"cache"`
	Pipeline Pipeline        `toml:"pipeline"`
}

// Generate configures the generate command.
type Generate struct {
	MinCost   int64  `toml:"min_cost"`
	MaxCost   int64  `toml:"max_cost"`
	Seed      uint64 `toml:"seed"`
	OutputDir string `toml:"output_dir"`
}

// Cache selects and configures the result cache backend.
type Cache struct {
	Backend       string        `toml:"backend"`
	TTL           time.Duration `toml:"ttl"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
}

// Pipeline configures batch solving.
type Pipeline struct {
	Parallelism int `toml:"parallelism"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Limits: pipeline.DefaultLimits(),
		Generate: Generate{
			MinCost:   generate.DefaultMinCost,
			MaxCost:   generate.DefaultMaxCost,
			OutputDir: ".",
		},
		Cache: Cache{
			Backend:   BackendFile,
			TTL:       cache.TTLResult,
			RedisAddr: "localhost:6379",
		},
		Pipeline: Pipeline{Parallelism: pipeline.DefaultParallelism},
	}
}

// Path returns the default config file location:
// $XDG_CONFIG_HOME/posthop/config.toml, or ~/.config/posthop/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the config file at path over the defaults and validates the
// result. An empty path means the default location, where a missing file
// is not an error. It returns the path actually read, or "" if none was.
func Load(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), "", nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return Default(), "", nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, "", perrors.Wrap(perrors.ErrCodeFileNotFound, err, "config %s", path)
	case err != nil:
		return nil, "", perrors.Wrap(perrors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, "", perrors.New(perrors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Validate rejects values no command could use.
func (c *Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if err := perrors.ValidateCostRange(c.Generate.MinCost, c.Generate.MaxCost); err != nil {
		return err
	}
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return perrors.New(perrors.ErrCodeInvalidInput, "unknown cache backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return perrors.New(perrors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "cache.ttl cannot be negative")
	}
	if c.Pipeline.Parallelism < 1 {
		return perrors.New(perrors.ErrCodeInvalidInput, "pipeline.parallelism must be at least 1, got %d", c.Pipeline.Parallelism)
	}
	return nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
