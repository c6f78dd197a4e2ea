package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sculpt/config"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/sym"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: sym.Short("config", "Show and validate sculpt configuration"),
		Long: `Display the configuration sculpt resolved from defaults, the project's
sculpt.toml and SCULPT_* environment variables.

Examples:
  sculpt config show                 # Show current configuration
  sculpt config show --format yaml   # Show configuration in YAML format
  sculpt config validate             # Validate current configuration
  sculpt config where                # Show which file was loaded`,
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, a.cfg, format)
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Configuration is valid")
			return nil
		},
	}

	where := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
			fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
			fmt.Fprintf(out, "  2. [PROJECT]  ./%s (searches up directories)\n", config.FileName)
			fmt.Fprintf(out, "  3. [ENV]      %s_* environment variables\n", config.EnvPrefix)
			fmt.Fprintln(out)
			if a.cfg.Source == "" {
				fmt.Fprintln(out, "No config file found, using defaults")
				return nil
			}
			fmt.Fprintf(out, "Loaded: %s\n", a.cfg.Source)
			return nil
		},
	}

	cmd.AddCommand(show, validate, where)
	return cmd
}

func showConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# sculpt configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# sculpt configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}
