// Package config loads sculpt's project configuration with viper.
//
// Sources, lowest precedence first: built-in defaults, the project's
// sculpt.toml (found by walking up from the working directory, or named with
// --config), then SCULPT_* environment variables (SCULPT_GENERATE_WORKERS=8).
package config

// Config represents the sculpt project configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate" json:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`

	// Source is the config file the values came from, empty when none was found
	Source string `mapstructure:"-" toml:"-" yaml:"-" json:"-"`
}

// GenerateConfig configures the generate and check commands
type GenerateConfig struct {
	Inputs    []string `mapstructure:"inputs" toml:"inputs" yaml:"inputs" json:"inputs"`                 // Declaration files used when none are given on the command line
	OutputDir string   `mapstructure:"output_dir" toml:"output_dir" yaml:"output_dir" json:"output_dir"` // Empty writes next to each input
	Suffix    string   `mapstructure:"suffix" toml:"suffix" yaml:"suffix" json:"suffix"`                 // Appended to the input's base name (default: _sculpt.go)
	Package   string   `mapstructure:"package" toml:"package" yaml:"package" json:"package"`             // Overrides the package clause of every input
	Format    bool     `mapstructure:"format" toml:"format" yaml:"format" json:"format"`                 // Run output through goimports (default: true)
	Workers   int      `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`             // Inputs generated in parallel (default: 4, 0 = one per input)
}

// LogConfig configures logging
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`         // Structured JSON logs instead of console output
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme" json:"theme"` // Console color theme: everforest, gruvbox, plain
}

// FileName is the project config file sculpt looks for
const FileName = "sculpt.toml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "SCULPT"

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
