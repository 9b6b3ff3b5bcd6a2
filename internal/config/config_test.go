package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/posthop/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 25, cfg.Limits.BruteForce)
	require.Equal(t, 25, cfg.Limits.DivideAndConquer)
	require.Equal(t, 0, cfg.Limits.Dynamic)
	require.Equal(t, int64(1), cfg.Generate.MinCost)
	require.Equal(t, int64(1000), cfg.Generate.MaxCost)
	require.Equal(t, BackendFile, cfg.Cache.Backend)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[limits]
brute_force = 18

[generate]
max_cost = 50
seed = 7

[cache]
backend = "none"
ttl = "2h"
`)
	cfg, used, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, 18, cfg.Limits.BruteForce)
	require.Equal(t, 25, cfg.Limits.DivideAndConquer, "unset keys keep defaults")
	require.Equal(t, int64(1), cfg.Generate.MinCost)
	require.Equal(t, int64(50), cfg.Generate.MaxCost)
	require.Equal(t, uint64(7), cfg.Generate.Seed)
	require.Equal(t, BackendNone, cfg.Cache.Backend)
	require.Equal(t, 2*time.Hour, cfg.Cache.TTL)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, used, err := Load("")
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, AppName), 0755))
	path := filepath.Join(dir, AppName, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pipeline]\nparallelism = 2\n"), 0644))

	cfg, used, err := Load("")
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, 2, cfg.Pipeline.Parallelism)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", "[limits\n", errors.ErrCodeInvalidInput},
		{"unknown key", "[limits]\ngreedy = 3\n", errors.ErrCodeInvalidInput},
		{"negative limit", "[limits]\nbrute_force = -1\n", errors.ErrCodeInvalidInput},
		{"bad range", "[generate]\nmin_cost = 10\nmax_cost = 5\n", errors.ErrCodeInvalidInput},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", errors.ErrCodeInvalidInput},
		{"redis without addr", "[cache]\nbackend = \"redis\"\nredis_addr = \"\"\n", errors.ErrCodeInvalidInput},
		{"zero parallelism", "[pipeline]\nparallelism = 0\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}

	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := Path()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg", "posthop", "config.toml"), p)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	out := buf.String()
	for _, want := range []string{"[limits]", "brute_force = 25", "[cache]", `backend = "file"`} {
		require.True(t, strings.Contains(out, want), "missing %q in\n%s", want, out)
	}
}
