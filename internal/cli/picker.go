package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/posthop/pkg/pipeline"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ReportListModel - Interactive report selection
// =============================================================================

// ReportListModel is the bubbletea model for browsing a batch of reports and
// choosing one to inspect.
type ReportListModel struct {
	Reports  []*pipeline.Report
	Cursor   int
	Selected *pipeline.Report
	Height   int
	Offset   int
}

// NewReportListModel creates a new report list model.
func NewReportListModel(reports []*pipeline.Report) ReportListModel {
	return ReportListModel{Reports: reports, Height: 15}
}

func (m ReportListModel) Init() tea.Cmd {
	return nil
}

func (m ReportListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Reports)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Reports) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		case "enter":
			if len(m.Reports) == 0 {
				return m, nil
			}
			m.Selected = m.Reports[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ReportListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Cost Table"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Reports))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, reportSummary(m.Reports[i])...))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Table", "Posts", "Cost", "Route", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Reports) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 2 || col == 3 {
				base = base.Align(lipgloss.Right)
			}
			healthy := m.Reports[idx].Agreement() == nil && len(m.Reports[idx].Failed()) == 0
			switch {
			case idx == m.Cursor && healthy:
				return base.Foreground(colorGreen).Bold(true)
			case idx == m.Cursor:
				return base.Foreground(colorRed).Bold(true)
			case !healthy:
				return base.Foreground(colorRed)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Reports))))

	return b.String()
}

// reportSummary renders the picker columns for one report.
func reportSummary(r *pipeline.Report) []string {
	name := r.Source
	if name == "" {
		name = r.ID[:min(8, len(r.ID))]
	}
	costStr, routeStr := "—", "—"
	if best, ok := r.Best(); ok {
		costStr = strconv.FormatInt(best.Result.Cost, 10)
		routeStr = truncateRoute(best.Result.String(), 32)
	}
	status := "ok"
	switch {
	case r.Agreement() != nil:
		status = "disagree"
	case len(r.Failed()) > 0:
		status = fmt.Sprintf("%d failed", len(r.Failed()))
	}
	return []string{name, strconv.Itoa(r.Size), costStr, routeStr, status}
}

// pickReport runs the picker and returns the chosen report, or nil if the
// user quit without choosing.
func pickReport(reports []*pipeline.Report) (*pipeline.Report, error) {
	final, err := tea.NewProgram(NewReportListModel(reports)).Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	return final.(ReportListModel).Selected, nil
}
