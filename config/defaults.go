package config

import "github.com/spf13/viper"

// Default values, shared by SetDefaults and Default
const (
	DefaultSuffix  = "_sculpt.go"
	DefaultWorkers = 4
	DefaultTheme   = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.inputs", []string{})
	v.SetDefault("generate.output_dir", "")
	v.SetDefault("generate.suffix", DefaultSuffix)
	v.SetDefault("generate.package", "")
	v.SetDefault("generate.format", true)
	v.SetDefault("generate.workers", DefaultWorkers)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultTheme)
}

// Default returns the configuration used when no file or environment
// override is present
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Inputs:  []string{},
			Suffix:  DefaultSuffix,
			Format:  true,
			Workers: DefaultWorkers,
		},
		Log: LogConfig{Theme: DefaultTheme},
	}
}
