// Package config loads depscope configuration from .depscope/config.yml with
// environment variable overrides.
package config

// Config represents the complete depscope configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// PathsConfig defines which files to analyze and which to skip.
type PathsConfig struct {
	Source []string `yaml:"source" mapstructure:"source"` // glob patterns for source files
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to skip
}

// AnalysisConfig tunes how source trees are processed.
type AnalysisConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // concurrent file processors; 0 means NumCPU
}

// OutputConfig defines how reports are rendered by the CLI.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "tree" or "json"
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Source: []string{
				"**/*.java",
			},
			Ignore: []string{
				".git/**",
				"target/**",
				"build/**",
				"out/**",
				"bin/**",
			},
		},
		Analysis: AnalysisConfig{
			Workers: 0,
		},
		Output: OutputConfig{
			Format: "tree",
		},
	}
}
