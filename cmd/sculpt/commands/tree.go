package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/sculpt/display"
	"github.com/teranos/sculpt/loader"
	"github.com/teranos/sculpt/pipeline"
	"github.com/teranos/sculpt/sym"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: sym.Short("tree", "Show the decisions a wizard asks for, in order"),
		Long: `Print the resolved decision tree of a declaration file: every decision
site, its variants, and the decision each choice hands over to.

Example:
  sculpt tree sheet.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			r, err := pipeline.Compile(file, pipeline.FromConfig(a.cfg))
			if err != nil {
				return err
			}
			return display.DecisionTree(cmd.OutOrStdout(), r.Resolution)
		},
	}
}
