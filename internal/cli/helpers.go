package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/depscope/depscope/internal/analyzer"
	"github.com/depscope/depscope/internal/config"
)

// loadConfig loads configuration from the working directory, applying the
// --format override when set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if formatFlag != "" {
		cfg.Output.Format = formatFlag
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newAnalyzer builds an Analyzer from configuration.
func newAnalyzer(cfg *config.Config, progress analyzer.ProgressReporter) (*analyzer.Analyzer, error) {
	opts := []analyzer.Option{
		analyzer.WithPatterns(cfg.Paths.Source, cfg.Paths.Ignore),
		analyzer.WithWorkers(cfg.Analysis.Workers),
	}
	if progress != nil {
		opts = append(opts, analyzer.WithProgress(progress))
	}
	return analyzer.New(opts...)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportFailures logs per-file failures to stderr and returns how many there
// were. Failed files are absent from the aggregate; the scan itself is fine.
func reportFailures(fileErrs []analyzer.FileError) int {
	for i := range fileErrs {
		log.Printf("Warning: skipped %s", fileErrs[i].Error())
	}
	return len(fileErrs)
}

// printDeps writes one dependency per line.
func printDeps(w io.Writer, deps []string) {
	for _, dep := range deps {
		fmt.Fprintln(w, dep)
	}
}

func init() {
	log.SetOutput(os.Stderr)
}
