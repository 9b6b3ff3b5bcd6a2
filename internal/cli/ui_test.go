package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	perrors "github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/pipeline"
	"github.com/matzehuels/posthop/pkg/route"
)

func sampleReport(source string, costs ...int64) *pipeline.Report {
	r := &pipeline.Report{ID: "0123456789abcdef", Source: source, Size: 4}
	algs := route.Algorithms()
	for i, c := range costs {
		r.Outcomes = append(r.Outcomes, pipeline.Outcome{
			Algorithm: algs[i%len(algs)],
			Result:    &route.Result{Path: []int{0, 1, 3}, Cost: c},
			Duration:  1500 * time.Microsecond,
		})
	}
	return r
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{1234 * time.Nanosecond, "1µs"},
		{1500 * time.Microsecond, "1.5ms"},
		{2345678 * time.Microsecond, "2.346s"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, formatDuration(tt.in), "formatDuration(%v)", tt.in)
	}
}

func TestTruncateRoute(t *testing.T) {
	short := "0->1->2"
	require.Equal(t, short, truncateRoute(short, 32))

	long := "0->10->20->30->40->50->60->70->80->90->99"
	got := truncateRoute(long, 24)
	require.True(t, strings.HasPrefix(got, "0->"), got)
	require.True(t, strings.HasSuffix(got, "->99"), got)
	require.Contains(t, got, "…")
	require.NotContains(t, got, "->->", "split a post number")
}

func TestOutcomeRow(t *testing.T) {
	ok := sampleReport("a.tsv", 7).Outcomes[0]
	row := outcomeRow(ok)
	require.Equal(t, "7", row[1], "cost")
	require.Equal(t, "3", row[2], "stops")

	skipped := pipeline.Outcome{Algorithm: route.AlgorithmBruteForce, Skipped: true}
	require.Contains(t, outcomeRow(skipped)[4], "skipped")

	failed := pipeline.Outcome{
		Algorithm: route.AlgorithmDynamic,
		Err:       errors.New("boom"),
		ErrorCode: perrors.ErrCodeOverflow,
	}
	require.Contains(t, outcomeRow(failed)[4], "OVERFLOW")
}

func TestCheckReports(t *testing.T) {
	require.NoError(t, checkReports([]*pipeline.Report{sampleReport("a.tsv", 7, 7, 7)}))

	err := checkReports([]*pipeline.Report{sampleReport("b.tsv", 7, 8)})
	requireCode(t, err, perrors.ErrCodeSolverDisagreement)

	r := sampleReport("c.tsv", 7)
	r.Outcomes = append(r.Outcomes, pipeline.Outcome{Algorithm: route.AlgorithmDynamic, Err: errors.New("boom")})
	require.Error(t, checkReports([]*pipeline.Report{r}), "failed solver should fail the command")
}

func TestReportSummary(t *testing.T) {
	got := reportSummary(sampleReport("", 7, 8))
	require.Equal(t, "01234567", got[0], "unnamed report should show the short id")
	require.Equal(t, "7", got[2], "best cost")
	require.Equal(t, "disagree", got[4])
}

func TestReportListModel(t *testing.T) {
	reports := []*pipeline.Report{sampleReport("a.tsv", 1), sampleReport("b.tsv", 2), sampleReport("c.tsv", 3)}
	var m tea.Model = NewReportListModel(reports)

	key := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j")) // stays on the last row
	m, _ = m.Update(key("k"))
	require.Equal(t, 1, m.(ReportListModel).Cursor)

	view := m.View()
	require.Contains(t, view, "b.tsv")
	require.Contains(t, view, "[2/3]")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "enter should quit the program")
	require.Same(t, reports[1], m.(ReportListModel).Selected)
}
