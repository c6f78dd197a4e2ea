// Package commands implements the sculpt command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/sculpt/config"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/logger"
)

// app carries what the root command resolves before any subcommand runs
type app struct {
	configPath string
	jsonLogs   bool
	verbosity  int

	cfg *config.Config
}

// NewRootCmd builds the sculpt command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sculpt",
		Short: "Generate step-by-step construction wizards from type declarations",
		Long: `sculpt turns a set of type declarations into the Go source of a wizard
that builds the root type one decision at a time.

Declarations live in YAML or TOML files. Mark the type to build with
root: true, the sum types a user chooses with decision: true, and the fields
whose types hold further decisions with expand: true.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SCULPT_* prefix)
3. Project config (sculpt.toml, searched upwards from the working directory)
4. Default values

Examples:
  sculpt generate sheet.yaml       # Write sheet_sculpt.go next to sheet.yaml
  sculpt check                     # Fail if generated files are stale
  sculpt tree sheet.yaml           # Show the order decisions are asked in
  sculpt play sheet.yaml           # Walk through the wizard in the terminal`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: sculpt.toml in the working directory or above)")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "Write logs as JSON")

	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newTreeCmd(a),
		newPlayCmd(a),
		newConfigCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.Theme != "" {
		logger.SetTheme(cfg.Log.Theme)
	}
	if err := logger.Initialize(a.jsonLogs || cfg.Log.JSON, a.verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	if logger.ShouldOutput(a.verbosity, logger.OutputConfig) {
		logger.ComponentLogger("config").Debugw("config loaded",
			"source", cfg.Source,
			"workers", cfg.Generate.Workers,
			"format", cfg.Generate.Format)
	}
	return nil
}

// inputs returns args, or the configured inputs when no args are given
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(a.cfg.Generate.Inputs) > 0 {
		return a.cfg.Generate.Inputs, nil
	}
	return nil, errors.WithHint(
		errors.New("no declaration files given"),
		"pass files as arguments or list them under [generate] inputs in sculpt.toml")
}
