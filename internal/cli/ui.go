package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/posthop/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached  = lipgloss.NewStyle().Foreground(colorGreen)
	styleSkipped = lipgloss.NewStyle().Foreground(colorYellow)
	styleFailed  = lipgloss.NewStyle().Foreground(colorRed)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}

// =============================================================================
// Reports
// =============================================================================

// printReport prints one matrix's outcomes as a table followed by the best
// route.
func printReport(r *pipeline.Report) {
	title := fmt.Sprintf("%d posts", r.Size)
	if r.Source != "" {
		title = r.Source + StyleDim.Render(" · "+title)
	}
	fmt.Println(StyleTitle.Render(title))
	fmt.Println(reportTable(r))

	best, ok := r.Best()
	if !ok {
		printError("no solver produced a route")
		return
	}
	printKeyValue("route", best.Result.String())
	printKeyValue("cost", StyleNumber.Render(strconv.FormatInt(best.Result.Cost, 10)))
	printKeyValue("stops", strconv.Itoa(best.Result.Stops()))
}

// reportTable lays the outcomes out one per row.
func reportTable(r *pipeline.Report) string {
	rows := make([][]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		rows = append(rows, outcomeRow(o))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Algorithm", "Cost", "Stops", "Time", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return s.Bold(true).Foreground(colorCyan)
			}
			switch col {
			case 1, 2:
				return s.Foreground(colorWhite).Align(lipgloss.Right)
			case 3:
				return s.Foreground(colorGray).Align(lipgloss.Right)
			}
			return s
		})
	return t.String()
}

func outcomeRow(o pipeline.Outcome) []string {
	label := o.Algorithm.Label()
	switch {
	case o.Skipped:
		return []string{label, "-", "-", "-", styleSkipped.Render("skipped")}
	case o.Err != nil:
		return []string{label, "-", "-", formatDuration(o.Duration), styleFailed.Render(string(o.ErrorCode))}
	}
	status := styleIconSuccess.Render(iconSuccess)
	if o.Cached {
		status = styleCached.Render("cached")
	}
	return []string{
		label,
		strconv.FormatInt(o.Result.Cost, 10),
		strconv.Itoa(o.Result.Stops()),
		formatDuration(o.Duration),
		status,
	}
}

// formatDuration picks a unit that keeps three significant digits.
func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

// truncateRoute shortens long paths for narrow displays, keeping both ends.
func truncateRoute(s string, max int) string {
	if max < 8 || len(s) <= max {
		return s
	}
	half := (max - 3) / 2
	head := s[:half]
	tail := s[len(s)-half:]
	if i := strings.LastIndex(head, "->"); i > 0 {
		head = head[:i]
	}
	if i := strings.Index(tail, "->"); i >= 0 {
		tail = tail[i+2:]
	}
	return head + "->…->" + tail
}
