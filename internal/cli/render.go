package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/pipeline"
	"github.com/matzehuels/posthop/pkg/render"
	"github.com/matzehuels/posthop/pkg/route"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file, "-" for stdout; default derives from input
	format     string // svg or dot
	algorithm  string // solver whose route is highlighted
	title      string // graph title; default is the input file name
	denseLimit int    // largest table drawn with every edge
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format:     formatSVG,
		algorithm:  string(route.AlgorithmDynamic),
		denseLimit: render.DefaultDenseLimit,
	}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a cost table as a graph with the cheapest route highlighted",
		Long: `Render draws posts as nodes and defined costs as edges, then highlights
the route found by the chosen algorithm. Tables above --dense-limit posts only
show edges between neighbouring posts and the route itself.`,
		Example: `  posthop render table.tsv
  posthop render table.tsv --format dot -o - | dot -Tpng > table.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, formatSVG, formatDOT); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "algorithm whose route is highlighted: bf, dc, dp")
	cmd.Flags().StringVar(&opts.title, "title", "", "diagram title (default: input file name)")
	cmd.Flags().IntVar(&opts.denseLimit, "dense-limit", opts.denseLimit, "draw every edge up to this many posts (-1 = always)")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", completeAlgorithms)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatSVG, formatDOT}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	alg, err := route.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse algorithm")
	}
	m, err := pipeline.Load(input)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %s (%d posts)", input, m.Size())

	runner := c.newRunner(ctx)
	defer runner.Close()

	popts := c.solveOptions()
	popts.Algorithms = []route.Algorithm{alg}
	report, err := runner.Solve(ctx, m, popts)
	if err != nil {
		return err
	}
	outcome := report.Outcomes[0]
	if !outcome.OK() {
		return outcome.Err
	}
	logger.Debug("route found", "algorithm", alg, "route", outcome.Result, "cost", outcome.Result.Cost, "cached", outcome.Cached)

	title := opts.title
	if title == "" {
		title = filepath.Base(input)
	}
	dot := render.ToDOT(m, outcome.Result, render.Options{DenseLimit: opts.denseLimit, Title: title})

	data := []byte(dot)
	if opts.format == formatSVG {
		data, err = render.RenderSVG(ctx, dot)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	path := opts.output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}
	if path != "-" {
		printSuccess("Rendered route %s (cost %d)", outcome.Result, outcome.Result.Cost)
		printFile(path)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		if err := errors.ValidatePath(path); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
