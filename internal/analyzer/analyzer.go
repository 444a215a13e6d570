package analyzer

import (
	"context"
	"fmt"
	"runtime"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Analyzer extracts class dependency reports from Java source trees. The
// grammar is loaded once at construction and shared read-only across all
// parses; construction fails with ErrGrammar when it cannot be loaded.
type Analyzer struct {
	language       *sitter.Language
	walker         *sourceWalker
	workers        int
	progress       ProgressReporter
	sourcePatterns []string
	ignorePatterns []string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets the number of concurrent file processors. Values below 1
// fall back to the number of CPUs.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithProgress configures progress reporting for multi-file scans.
func WithProgress(progress ProgressReporter) Option {
	return func(a *Analyzer) {
		a.progress = progress
	}
}

// WithPatterns overrides the source and ignore glob patterns used by the
// tree walker.
func WithPatterns(source, ignore []string) Option {
	return func(a *Analyzer) {
		if len(source) > 0 {
			a.sourcePatterns = source
		}
		a.ignorePatterns = ignore
	}
}

// New creates an Analyzer with the Java grammar loaded.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		workers:        runtime.NumCPU(),
		progress:       NoOpProgressReporter{},
		sourcePatterns: []string{"**/*.java"},
	}
	for _, opt := range opts {
		opt(a)
	}

	language, err := loadJavaLanguage()
	if err != nil {
		return nil, err
	}
	a.language = language

	walker, err := newSourceWalker(a.sourcePatterns, a.ignorePatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	a.walker = walker

	if a.workers < 1 {
		a.workers = runtime.NumCPU()
	}

	return a, nil
}

// ClassDependencies extracts the report tree of every top-level class
// declared in a single source file.
func (a *Analyzer) ClassDependencies(ctx context.Context, path string) ([]ClassDepsReport, error) {
	return a.ProcessFile(ctx, path)
}
