package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/logger"
	"github.com/teranos/sculpt/pipeline"
	"github.com/teranos/sculpt/sym"
)

// ErrStale is returned by check when a generated file does not match its input
var ErrStale = errors.New("generated files are out of date")

func newCheckCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: sym.Short("check", "Check that generated files are up to date"),
		Long: `Regenerate in memory and compare with the files on disk, ignoring the
version header so a newer patch release does not mark everything stale.

Exits non-zero when any file is missing or differs.

Examples:
  sculpt check                # Check the inputs listed in sculpt.toml
  sculpt check sheet.yaml     # Check one file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Directory holding generated files (default: next to each input)")
	cmd.Flags().StringVarP(&f.pkg, "package", "p", "", "Package clause of the generated files")
	return cmd
}

func runCheck(cmd *cobra.Command, a *app, f generateFlags, args []string) error {
	inputs, err := a.inputs(args)
	if err != nil {
		return err
	}
	f.workers = -1
	opts := a.options(f)

	results, err := pipeline.Batch(cmd.Context(), inputs, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var stale []string
	for _, r := range results {
		path, check, err := pipeline.Check(r, opts)
		if err != nil {
			return err
		}
		if !check.UpToDate {
			stale = append(stale, path)
			pterm.Fprintln(out, "stale "+path)
			continue
		}
		if logger.ShouldOutput(a.verbosity, logger.OutputProgress) {
			pterm.Fprintln(out, "ok    "+path)
		}
	}

	if len(stale) > 0 {
		return errors.WithHint(
			errors.Wrapf(ErrStale, "%d of %d files", len(stale), len(results)),
			"run sculpt generate")
	}
	pterm.Success.WithWriter(out).Println("generated files are up to date")
	return nil
}
