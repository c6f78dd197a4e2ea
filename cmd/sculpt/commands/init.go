package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sculpt/config"
	"github.com/teranos/sculpt/sym"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [inputs...]",
		Short: sym.Short("init", "Write a sculpt.toml with default settings"),
		Long: `Create sculpt.toml in the working directory. Declaration files given as
arguments are listed as the default inputs of generate and check.

An existing sculpt.toml is left alone unless --force is set, in which case
the old file is kept as sculpt.toml.back1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if len(args) > 0 {
				cfg.Generate.Inputs = args
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Write(cfg, config.FileName, force); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("wrote %s", config.FileName)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing sculpt.toml")
	return cmd
}
