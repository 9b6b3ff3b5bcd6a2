package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/generate"
	pio "github.com/matzehuels/posthop/pkg/io"
	"github.com/matzehuels/posthop/pkg/pipeline"
)

const (
	formatTSV  = "tsv"
	formatJSON = "json"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	sizes    []int
	policies []string
	outDir   string
	format   string // tsv or json
	seed     uint64
	minCost  int64
	maxCost  int64
	test     bool // solve every generated table
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random cost tables",
		Long: `Generate writes one random cost table per policy and size, named
<policy>-cost-table-<n>.tsv. The independent policy draws every cost on its
own; the cumulative policy makes costs grow along each row. With --test the
generated tables are solved right away.`,
		Example: `  posthop generate --sizes 10,25,50
  posthop generate --sizes 20 --policy cumulative --seed 7 --test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("out") {
				opts.outDir = c.cfg.Generate.OutputDir
			}
			if !flags.Changed("seed") {
				opts.seed = c.cfg.Generate.Seed
			}
			if !flags.Changed("min-cost") {
				opts.minCost = c.cfg.Generate.MinCost
			}
			if !flags.Changed("max-cost") {
				opts.maxCost = c.cfg.Generate.MaxCost
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntSliceVarP(&opts.sizes, "sizes", "n", []int{25}, "table sizes (number of posts)")
	cmd.Flags().StringSliceVarP(&opts.policies, "policy", "p", []string{"independent", "cumulative"}, "generation policies: independent, cumulative")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTSV, "file format: tsv, json")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = random per table)")
	cmd.Flags().Int64Var(&opts.minCost, "min-cost", generate.DefaultMinCost, "smallest cost drawn")
	cmd.Flags().Int64Var(&opts.maxCost, "max-cost", generate.DefaultMaxCost, "largest cost drawn")
	cmd.Flags().BoolVar(&opts.test, "test", false, "solve the generated tables")
	_ = cmd.RegisterFlagCompletionFunc("policy", completePolicies)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatTSV, formatJSON}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// generated is one table written by runGenerate.
type generated struct {
	path string
	job  pipeline.Job
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	tables, err := generateTables(opts)
	if err != nil {
		return err
	}

	printSuccess("Generated %d tables", len(tables))
	for _, t := range tables {
		printFile(t.path)
	}

	if !opts.test {
		if len(tables) > 0 {
			printNewline()
			printNextStep("Solve them with", fmt.Sprintf("%s solve %s", appName, tables[0].path))
		}
		return nil
	}

	jobs := make([]pipeline.Job, len(tables))
	for i, t := range tables {
		jobs[i] = t.job
	}

	runner := c.newRunner(ctx)
	defer runner.Close()

	printNewline()
	reports, err := c.solveJobs(ctx, runner, jobs, c.solveOptions(), true)
	if err != nil {
		return err
	}
	for i, r := range reports {
		if i > 0 {
			printNewline()
		}
		printReport(r)
	}
	return checkReports(reports)
}

// generateTables draws and saves one table per policy and size. A non-zero
// seed is offset per table so that every table differs but the whole run is
// reproducible.
func generateTables(opts generateOpts) ([]generated, error) {
	if err := errors.ValidateFormat(opts.format, formatTSV, formatJSON); err != nil {
		return nil, err
	}
	if err := errors.ValidateCostRange(opts.minCost, opts.maxCost); err != nil {
		return nil, err
	}
	if len(opts.sizes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no sizes given")
	}
	for _, n := range opts.sizes {
		if err := errors.ValidateSize(n); err != nil {
			return nil, err
		}
	}
	policies := make([]generate.Policy, 0, len(opts.policies))
	for _, name := range opts.policies {
		p, err := generate.ParsePolicy(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse policy")
		}
		policies = append(policies, p)
	}

	if err := errors.ValidatePath(opts.outDir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var out []generated
	for _, p := range policies {
		for _, n := range opts.sizes {
			gopts := generate.Options{MinCost: opts.minCost, MaxCost: opts.maxCost}
			if opts.seed != 0 {
				gopts.Seed = opts.seed + uint64(len(out))
			}
			m, err := generate.Generate(n, p, gopts)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "generate %s table of size %d", p, n)
			}
			path := filepath.Join(opts.outDir, tableFileName(p, n, opts.format))
			if err := pio.Export(m, path); err != nil {
				return nil, fmt.Errorf("save %s: %w", path, err)
			}
			out = append(out, generated{path: path, job: pipeline.Job{Source: path, Matrix: m}})
		}
	}
	return out, nil
}

// tableFileName is generate.FileName with the extension matching format.
func tableFileName(p generate.Policy, n int, format string) string {
	name := generate.FileName(p, n)
	if format == formatJSON {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	}
	return name
}
