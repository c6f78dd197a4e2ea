package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sculpt/display"
	"github.com/teranos/sculpt/loader"
	"github.com/teranos/sculpt/logger"
	"github.com/teranos/sculpt/pipeline"
	"github.com/teranos/sculpt/sym"
	"github.com/teranos/sculpt/wizard"
)

type playFlags struct {
	defaults bool
	choose   map[string]string
	json     bool
}

func newPlayCmd(a *app) *cobra.Command {
	var f playFlags

	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: sym.Short("play", "Walk through a wizard without generating code"),
		Long: `Run the wizard described by a declaration file in the terminal. Each
decision is asked as soon as the previous choice leads to it, the same way
the generated code calls its callbacks.

Examples:
  sculpt play sheet.yaml                                   # Choose interactively
  sculpt play --defaults sheet.yaml                        # First option everywhere
  sculpt play --defaults --choose ElfSubrace=WoodElf --choose Race=Elf sheet.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, a, f, args[0])
		},
	}

	cmd.Flags().BoolVar(&f.defaults, "defaults", false, "Take the first option wherever --choose does not decide")
	cmd.Flags().StringToStringVar(&f.choose, "choose", nil, "Fix the choice at a site (Site=Tag, repeatable)")
	cmd.Flags().BoolVarP(&f.json, "json", "j", false, "Output the built value and the decisions taken as JSON")
	return cmd
}

// playResult is the JSON form of a finished walk
type playResult struct {
	Value string        `json:"value"`
	Steps []wizard.Step `json:"steps"`
}

func runPlay(cmd *cobra.Command, a *app, f playFlags, path string) error {
	file, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	r, err := pipeline.Compile(file, pipeline.FromConfig(a.cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var fallback wizard.Driver = wizard.DefaultDriver{}
	if !f.defaults {
		fallback = interactiveDriver()
	}
	trace := wizard.NewTrace(wizard.Overrides{Choices: f.choose, Fallback: fallback})

	v, err := wizard.Run(r.Schema, trace)
	if err != nil {
		return err
	}

	if f.json {
		return display.OutputJSON(out, playResult{Value: v.String(), Steps: trace.Steps})
	}

	if logger.ShouldOutput(a.verbosity, logger.OutputSites) {
		for i, s := range trace.Steps {
			pterm.Fprintln(out, fmt.Sprintf("%d. %s = %s", i+1, s.Site, s.Tag))
		}
	}
	pterm.Fprintln(out, v.String())
	return nil
}

// interactiveDriver asks for every choice with a pterm select prompt
func interactiveDriver() wizard.Driver {
	return wizard.DriverFunc(func(p wizard.Picker) error {
		opts := p.Options()
		tag, err := pterm.DefaultInteractiveSelect.
			WithOptions(opts).
			WithDefaultOption(opts[0]).
			WithDefaultText(fmt.Sprintf("%s (%s at %s)", p.Site(), p.Type(), p.Path())).
			Show()
		if err != nil {
			return err
		}
		return p.Fulfill(tag)
	})
}
