package config

import "fmt"

// Validate checks a configuration for values the analyzer cannot work with.
func Validate(cfg *Config) error {
	if len(cfg.Paths.Source) == 0 {
		return fmt.Errorf("paths.source must contain at least one pattern")
	}
	if cfg.Analysis.Workers < 0 {
		return fmt.Errorf("analysis.workers must not be negative, got %d", cfg.Analysis.Workers)
	}
	switch cfg.Output.Format {
	case "tree", "json":
	default:
		return fmt.Errorf("output.format must be \"tree\" or \"json\", got %q", cfg.Output.Format)
	}
	return nil
}
