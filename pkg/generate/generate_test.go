package generate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/posthop/pkg/generate"
)

func TestGenerate_Range(t *testing.T) {
	for _, p := range generate.Policies() {
		t.Run(p.String(), func(t *testing.T) {
			m, err := generate.Generate(12, p, generate.Options{MinCost: 3, MaxCost: 7, Seed: 11})
			require.NoError(t, err)
			require.Equal(t, 12, m.Size())
			for i := 0; i < m.Size(); i++ {
				for j := i + 1; j < m.Size(); j++ {
					c, err := m.Cost(i, j)
					require.NoError(t, err)
					require.GreaterOrEqual(t, c, int64(3))
					if p == generate.Independent {
						require.LessOrEqual(t, c, int64(7))
					}
				}
			}
		})
	}
}

func TestGenerate_CumulativeRowsAreMonotone(t *testing.T) {
	m, err := generate.Generate(30, generate.Cumulative, generate.Options{Seed: 5})
	require.NoError(t, err)
	for i := 0; i < m.Size(); i++ {
		for j := i + 1; j+1 < m.Size(); j++ {
			a, err := m.Cost(i, j)
			require.NoError(t, err)
			b, err := m.Cost(i, j+1)
			require.NoError(t, err)
			require.LessOrEqual(t, a, b, "row %d columns %d,%d", i, j, j+1)
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	opts := generate.Options{Seed: 42}
	a, err := generate.Generate(10, generate.Independent, opts)
	require.NoError(t, err)
	b, err := generate.Generate(10, generate.Independent, opts)
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	c, err := generate.Generate(10, generate.Independent, generate.Options{Seed: 43})
	require.NoError(t, err)
	require.NotEqual(t, a.Rows(), c.Rows())
}

func TestGenerate_UnseededCallsDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for range 20 {
		m, err := generate.Generate(8, generate.Independent, generate.Options{})
		require.NoError(t, err)
		key := fmt.Sprint(m.Rows())
		require.False(t, seen[key], "unseeded call repeated an earlier matrix")
		seen[key] = true
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := generate.Generate(1, generate.Independent, generate.Options{})
	require.Error(t, err)

	_, err = generate.Generate(5, generate.Independent, generate.Options{MinCost: 0, MaxCost: 10})
	require.Error(t, err)

	_, err = generate.Generate(5, generate.Independent, generate.Options{MinCost: 10, MaxCost: 5})
	require.Error(t, err)

	_, err = generate.Generate(5, generate.Policy(9), generate.Options{})
	require.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want generate.Policy
	}{
		{"independent", generate.Independent},
		{"RANDOM", generate.Independent},
		{"cumulative", generate.Cumulative},
		{" dependent ", generate.Cumulative},
	}
	for _, tt := range tests {
		got, err := generate.ParsePolicy(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
	_, err := generate.ParsePolicy("gaussian")
	require.Error(t, err)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "cumulative-cost-table-25.tsv", generate.FileName(generate.Cumulative, 25))
	require.Equal(t, "independent-cost-table-4.tsv", generate.FileName(generate.Independent, 4))
}
