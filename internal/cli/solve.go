package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	algorithms []string // names or aliases: bf, dc, dp
	json       bool     // print reports as JSON instead of tables
	refresh    bool     // ignore cached results
	pick       bool     // browse reports interactively
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Find the cheapest route through one or more cost tables",
		Long: `Solve loads each cost table (tab-separated, or JSON when the file ends in
.json) and runs the selected algorithms on it. Algorithms above their size
limit are skipped. The command fails if any algorithm errors or if two
algorithms disagree on the minimum cost.`,
		Example: `  posthop solve cumulative-cost-table-25.tsv
  posthop solve --algorithms dp tables/*.tsv
  posthop solve --json table.tsv | jq '.[0].outcomes'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.algorithms, "algorithms", "a", nil, "algorithms to run: bf, dc, dp (default all)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print reports as JSON")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "browse the reports interactively")
	cmd.MarkFlagsMutuallyExclusive("json", "pick")
	_ = cmd.RegisterFlagCompletionFunc("algorithms", completeAlgorithms)

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, paths []string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	jobs := make([]pipeline.Job, 0, len(paths))
	for _, p := range paths {
		m, err := pipeline.Load(p)
		if err != nil {
			return err
		}
		logger.Debug("loaded table", "path", p, "size", m.Size())
		jobs = append(jobs, pipeline.Job{Source: p, Matrix: m})
	}

	popts := c.solveOptions()
	popts.Refresh = opts.refresh
	if len(opts.algorithms) > 0 {
		algs, err := pipeline.ParseAlgorithms(opts.algorithms)
		if err != nil {
			return err
		}
		popts.Algorithms = algs
	}

	runner := c.newRunner(ctx)
	defer runner.Close()

	reports, err := c.solveJobs(ctx, runner, jobs, popts, !opts.json)
	if err != nil {
		return err
	}

	switch {
	case opts.json:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode reports: %w", err)
		}
	case opts.pick:
		selected, err := pickReport(reports)
		if err != nil {
			return err
		}
		if selected != nil {
			printReport(selected)
		}
	default:
		for i, r := range reports {
			if i > 0 {
				printNewline()
			}
			printReport(r)
		}
	}

	return checkReports(reports)
}

// solveJobs runs the batch behind a spinner that counts finished tables.
func (c *CLI) solveJobs(ctx context.Context, runner *pipeline.Runner, jobs []pipeline.Job, opts pipeline.Options, interactive bool) ([]*pipeline.Report, error) {
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if interactive {
		spinner = newSpinner(ctx, fmt.Sprintf("Solving 0/%d tables", len(jobs)))
		spinner.Start()
		defer spinner.Stop()
		opts.Progress = func(done, total int) {
			spinner.Update("Solving %d/%d tables", done, total)
		}
	}

	reports, err := runner.SolveBatch(ctx, jobs, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Solved %d tables", len(jobs)))
	return reports, nil
}

// checkReports turns failed or disagreeing reports into a command error.
// Skipped solvers are not failures.
func checkReports(reports []*pipeline.Report) error {
	failed := 0
	for _, r := range reports {
		if err := r.Agreement(); err != nil {
			return errors.Wrap(errors.ErrCodeSolverDisagreement, err, "%s", r.Source)
		}
		failed += len(r.Failed())
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeInternal, "%d solver runs failed", failed)
	}
	return nil
}
