package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/logger"
	"github.com/teranos/sculpt/pipeline"
	"github.com/teranos/sculpt/sym"
)

type generateFlags struct {
	outputDir string
	pkg       string
	workers   int
	noFormat  bool
	stdout    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: sym.Short("generate", "Generate wizard source from declaration files"),
		Long: `Generate one Go file per declaration file.

Every input is checked before anything is written: a missing root, an
unresolved type, a cycle or an unsupported field shape fails the whole run.
Files whose content is unchanged apart from the version header are left alone.

Examples:
  sculpt generate sheet.yaml                 # Writes sheet_sculpt.go
  sculpt generate --output-dir gen *.yaml    # Writes into gen/
  sculpt generate --stdout sheet.yaml        # Print instead of writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for generated files (default: next to each input)")
	cmd.Flags().StringVarP(&f.pkg, "package", "p", "", "Package clause of the generated files (default: from the declaration file)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", -1, "Inputs generated in parallel (default: from config)")
	cmd.Flags().BoolVar(&f.noFormat, "no-format", false, "Skip goimports formatting")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "Print the generated source instead of writing files")
	return cmd
}

func (a *app) options(f generateFlags) pipeline.Options {
	opts := pipeline.FromConfig(a.cfg)
	if f.outputDir != "" {
		opts.OutputDir = f.outputDir
	}
	if f.pkg != "" {
		opts.Package = f.pkg
	}
	if f.workers >= 0 {
		opts.Workers = f.workers
	}
	if f.noFormat {
		opts.Format = false
	}
	return opts
}

func runGenerate(cmd *cobra.Command, a *app, f generateFlags, args []string) error {
	inputs, err := a.inputs(args)
	if err != nil {
		return err
	}
	opts := a.options(f)

	results, err := pipeline.Batch(cmd.Context(), inputs, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.stdout {
		for _, r := range results {
			if _, err := out.Write(r.Output); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
		}
		return nil
	}

	var written int
	for _, r := range results {
		if logger.ShouldOutput(a.verbosity, logger.OutputSource) {
			pterm.Fprintln(cmd.ErrOrStderr(), string(r.Output))
		}
		path, status, err := pipeline.Write(r, opts)
		if err != nil {
			return err
		}
		if status != pipeline.Unchanged {
			written++
		}
		if logger.ShouldOutput(a.verbosity, logger.OutputProgress) || status != pipeline.Unchanged {
			pterm.Fprintln(out, pterm.Sprintf("%s %s", status, path))
		}
	}

	pterm.Success.WithWriter(out).Printfln("%d of %d files written", written, len(results))
	return nil
}
