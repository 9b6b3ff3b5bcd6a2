package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/posthop/internal/config"
	"github.com/matzehuels/posthop/pkg/errors"
)

// isolate points the config and cache directories at temporary ones for the
// rest of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

// execute runs the root command with a fresh CLI.
func execute(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return c, root.ExecuteContext(context.Background())
}

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.tsv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// requireCode asserts that err carries the given error code.
func requireCode(t *testing.T, err error, code errors.Code) {
	t.Helper()
	require.Truef(t, errors.Is(err, code), "error = %v, want %s", err, code)
}

const exampleTable = "0\t2\t5\t9\nNA\t0\t2\t6\nNA\tNA\t0\t3\nNA\tNA\tNA\t0"

func TestSolveCommand(t *testing.T) {
	isolate(t)
	path := writeTable(t, exampleTable)

	_, err := execute(t, "solve", path)
	require.NoError(t, err)
	_, err = execute(t, "solve", "--json", "--algorithms", "dp,bf", path)
	require.NoError(t, err)
}

func TestSolveCommandErrors(t *testing.T) {
	isolate(t)

	_, err := execute(t, "solve", filepath.Join(t.TempDir(), "missing.tsv"))
	requireCode(t, err, errors.ErrCodeFileNotFound)

	_, err = execute(t, "solve", writeTable(t, "0\tx\nNA\t0"))
	requireCode(t, err, errors.ErrCodeInvalidMatrix)

	_, err = execute(t, "solve", "--algorithms", "greedy", writeTable(t, exampleTable))
	requireCode(t, err, errors.ErrCodeInvalidInput)
}

func TestLimitFlagsOverrideConfig(t *testing.T) {
	isolate(t)
	path := writeTable(t, exampleTable)

	c, err := execute(t, "--bf-limit", "3", "--dp-limit", "10", "--no-cache", "solve", path)
	require.NoError(t, err)
	require.Equal(t, 3, c.cfg.Limits.BruteForce)
	require.Equal(t, 10, c.cfg.Limits.Dynamic)
	require.Equal(t, 25, c.cfg.Limits.DivideAndConquer, "unset dc limit changed")
	require.Equal(t, config.BackendNone, c.cfg.Cache.Backend)
}

func TestGenerateCommandWithTest(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := execute(t, "generate", "--sizes", "4,7", "--seed", "3", "--out", dir, "--test")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "independent-cost-table-7.tsv"))
	require.FileExists(t, filepath.Join(dir, "cumulative-cost-table-4.tsv"))
}

func TestRenderCommandDOT(t *testing.T) {
	isolate(t)
	path := writeTable(t, exampleTable)
	out := filepath.Join(t.TempDir(), "route.dot")

	_, err := execute(t, "render", path, "--format", "dot", "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Regexp(t, `^digraph`, string(data))

	_, err = execute(t, "render", path, "--format", "png")
	requireCode(t, err, errors.ErrCodeInvalidFormat)
}

func TestCacheCommands(t *testing.T) {
	isolate(t)
	path := writeTable(t, exampleTable)

	for _, args := range [][]string{
		{"solve", path},
		{"cache", "path"},
		{"cache", "clear"},
	} {
		_, err := execute(t, args...)
		require.NoError(t, err, "%v", args)
	}
}

func TestConfigFileIsLoaded(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	body := "[limits]\nbrute_force = 12\n\n[cache]\nbackend = \"none\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	c, err := execute(t, "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	require.Equal(t, 12, c.cfg.Limits.BruteForce)
	require.Equal(t, config.BackendNone, c.cfg.Cache.Backend)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "config", "path")
	requireCode(t, err, errors.ErrCodeFileNotFound)
}
