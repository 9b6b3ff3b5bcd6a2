// Package render draws a cost matrix and a chosen route as a Graphviz diagram.
//
// Posts are laid out left to right. Every defined edge of a small matrix is
// drawn in grey with its cost; the route is drawn on top in bold red. Large
// matrices have n(n-1)/2 edges, far too many to read, so above
// [Options.DenseLimit] only the route and the edges between neighbouring
// posts are drawn.
//
//	dot := render.ToDOT(m, &res, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// [ToDOT] output can also be saved and processed with external Graphviz
// tools. SVG rendering runs in process through
// [github.com/goccy/go-graphviz], so no Graphviz installation is needed.
package render
