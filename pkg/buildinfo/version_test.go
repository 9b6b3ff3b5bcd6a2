package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.0", "3f9c2ab81d0e"
	require.Equal(t, "v1.2.0 (3f9c2ab)", Short())

	Commit = "none"
	require.Equal(t, "v1.2.0 (none)", Short())
}

func TestTemplate(t *testing.T) {
	require.Regexp(t, `^\{\{\.Name\}\} version `, Template())
	require.Contains(t, String(), "commit: ")
}
