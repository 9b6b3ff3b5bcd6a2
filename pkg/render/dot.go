package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/posthop/pkg/cost"
	"github.com/matzehuels/posthop/pkg/route"
)

// DefaultDenseLimit is the largest matrix drawn with all of its edges.
const DefaultDenseLimit = 12

// Options configures diagram generation.
type Options struct {
	// DenseLimit is the largest size for which every defined edge is drawn.
	// Zero means DefaultDenseLimit; a negative value always draws every edge.
	DenseLimit int

	// Title is placed above the diagram when non-empty.
	Title string
}

func (o Options) dense(n int) bool {
	limit := o.DenseLimit
	if limit == 0 {
		limit = DefaultDenseLimit
	}
	return limit < 0 || n <= limit
}

const (
	pathColor  = "#d62728"
	edgeColor  = "#b0b0b0"
	pathFill   = "#fde0dd"
	postFill   = "white"
	fontFamily = "Helvetica"
)

// ToDOT converts m to Graphviz DOT. When res is non-nil its path is
// highlighted and its cost shown in the graph label.
func ToDOT(m *cost.Matrix, res *route.Result, opts Options) string {
	n := m.Size()
	onPath := make(map[[2]int]bool)
	visited := make(map[int]bool)
	if res != nil {
		for k, p := range res.Path {
			visited[p] = true
			if k > 0 {
				onPath[[2]int{res.Path[k-1], p}] = true
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, fontname=%q, fontsize=14];\n", postFill, fontFamily)
	fmt.Fprintf(&buf, "  edge [fontname=%q, fontsize=10, color=%q, fontcolor=%q];\n", fontFamily, edgeColor, edgeColor)
	if label := graphLabel(opts.Title, res); label != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", label)
	}
	buf.WriteString("\n")

	for i := 0; i < n; i++ {
		if visited[i] {
			fmt.Fprintf(&buf, "  %q [fillcolor=%q, color=%q, penwidth=2];\n", strconv.Itoa(i), pathFill, pathColor)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", strconv.Itoa(i))
		}
	}

	buf.WriteString("\n")
	dense := opts.dense(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			hot := onPath[[2]int{i, j}]
			if !hot && !dense && j != i+1 {
				continue
			}
			c, err := m.Cost(i, j)
			if err != nil {
				continue
			}
			from, to := strconv.Itoa(i), strconv.Itoa(j)
			if hot {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q, color=%q, fontcolor=%q, penwidth=3, weight=10];\n",
					from, to, strconv.FormatInt(c, 10), pathColor, pathColor)
				continue
			}
			// Skip edges carry no layout weight so posts stay in order.
			attrs := ""
			if j != i+1 {
				attrs = ", constraint=false"
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q%s];\n", from, to, strconv.FormatInt(c, 10), attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func graphLabel(title string, res *route.Result) string {
	switch {
	case res == nil:
		return title
	case title == "":
		return fmt.Sprintf("%s (cost %d)", res, res.Cost)
	}
	return fmt.Sprintf("%s\n%s (cost %d)", title, res, res.Cost)
}
