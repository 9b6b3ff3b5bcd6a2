package io_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/posthop/pkg/cost"
	"github.com/matzehuels/posthop/pkg/generate"
	pio "github.com/matzehuels/posthop/pkg/io"
)

const sample = "0\t2\t5\t9\nNA\t0\t2\t6\nNA\tNA\t0\t3\nNA\tNA\tNA\t0"

func TestReadTable(t *testing.T) {
	m, err := pio.ReadTable(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())
	c, err := m.Cost(0, 3)
	require.NoError(t, err)
	require.Equal(t, int64(9), c)
}

func TestReadTable_LineEndings(t *testing.T) {
	crlf := strings.ReplaceAll(sample, "\n", "\r\n") + "\r\n"
	m, err := pio.ReadTable(strings.NewReader(crlf))
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())
}

func TestReadTable_TrailingBlankLines(t *testing.T) {
	m, err := pio.ReadTable(strings.NewReader(sample + "\n\n\r\n"))
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())
}

func TestReadTable_IgnoresLowerTriangle(t *testing.T) {
	in := "0\t4\nwhatever\t0"
	m, err := pio.ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.False(t, m.Defined(1, 0))
}

func TestReadTable_UndefinedCell(t *testing.T) {
	in := "0\tNA\t3\nNA\t0\t1\nNA\tNA\t0"
	m, err := pio.ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.False(t, m.Defined(0, 1))
	require.True(t, m.Defined(1, 2))
}

func TestReadTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", cost.ErrTooSmall},
		{"single", "0", cost.ErrTooSmall},
		{"ragged", "0\t1\t2\nNA\t0", cost.ErrNonSquare},
		{"missing row", "0\t1\t2\nNA\t0\t1", cost.ErrNonSquare},
		{"not a number", "0\tabc\nNA\t0", pio.ErrSyntax},
		{"negative", "0\t-1\nNA\t0", cost.ErrNegativeCost},
		{"diagonal", "0\t1\nNA\t5", cost.ErrNonZeroDiagonal},
		{"no direct edge", "0\t1\tNA\nNA\t0\t1\nNA\tNA\t0", cost.ErrMissingDirectEdge},
		{"blank line between rows", "0\t1\t5\n\nNA\t0\t1\nNA\tNA\t0", pio.ErrSyntax},
		{"blank lines everywhere", "0\t1\t5\n\n\n\nNA\t0\t1\n\n\nNA\tNA\t0\n\n\n\n", pio.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pio.ReadTable(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWriteTable_ReproducesInput(t *testing.T) {
	m, err := pio.ReadTable(strings.NewReader(sample))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, pio.WriteTable(m, &buf))
	require.Equal(t, sample, buf.String())
}

func TestWriteTable_UndefinedCells(t *testing.T) {
	in := "0\tNA\t3\nNA\t0\t1\nNA\tNA\t0"
	m, err := pio.ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, pio.WriteTable(m, &buf))
	require.Equal(t, in, buf.String())
}

func TestJSON(t *testing.T) {
	m, err := pio.ReadTable(strings.NewReader("0\tNA\t3\nNA\t0\t1\nNA\tNA\t0"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pio.WriteJSON(m, &buf))
	require.Contains(t, buf.String(), `"size": 3`)

	back, err := pio.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, m.Rows(), back.Rows())
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := pio.ReadJSON(strings.NewReader("{"))
	require.ErrorIs(t, err, pio.ErrSyntax)

	_, err = pio.ReadJSON(strings.NewReader(`{"size": 3, "costs": [[0, 1], [null, 0]]}`))
	require.ErrorIs(t, err, cost.ErrNonSquare)

	_, err = pio.ReadJSON(strings.NewReader(`{"costs": [[0, -1], [null, 0]]}`))
	require.ErrorIs(t, err, cost.ErrNegativeCost)

	_, err = pio.ReadJSON(strings.NewReader(`{"costs": [[0, null], [null, 0]]}`))
	require.ErrorIs(t, err, cost.ErrMissingDirectEdge)
}

func TestImportExport_ByExtension(t *testing.T) {
	m, err := generate.Generate(6, generate.Cumulative, generate.Options{Seed: 3})
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"m.tsv", "m.json", "m.txt", "RANDOMCostTable6.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, pio.Export(m, path))
		back, err := pio.Import(path)
		require.NoError(t, err, name)
		require.Equal(t, m.Rows(), back.Rows(), name)
	}

	_, err = pio.Import(filepath.Join(dir, "missing.tsv"))
	require.Error(t, err)
}
