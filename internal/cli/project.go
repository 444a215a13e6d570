package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/analyzer"
	"github.com/depscope/depscope/internal/config"
	"github.com/depscope/depscope/internal/watcher"
)

var watchFlag bool

// projectCmd aggregates dependencies across a whole directory tree.
var projectCmd = &cobra.Command{
	Use:   "project <root>",
	Short: "Report the union of class dependencies across a source tree",
	Long: `Walk the full directory tree rooted at <root>, process every Java
source file, and print the deduplicated union of every class's
dependencies, nested classes included.

Examples:
  depscope project .
  depscope project --format json ~/work/service
  depscope project --watch .`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "re-run the analysis when source files change")
}

func runProject(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newAnalyzer(cfg, NewCLIProgressReporter(quietFlag))
	if err != nil {
		return err
	}

	root := args[0]
	if err := analyzeProject(ctx, a, cfg, root); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}
	return watchProject(ctx, a, cfg, root)
}

func analyzeProject(ctx context.Context, a *analyzer.Analyzer, cfg *config.Config, root string) error {
	report, fileErrs, err := a.ProjectDependencies(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to analyze project %s: %w", root, err)
	}
	failed := reportFailures(fileErrs)

	if cfg.Output.Format == "json" {
		return printJSON(os.Stdout, report)
	}
	fmt.Printf("project %s\n", report.ProjectFolder)
	printDeps(os.Stdout, report.ProjectDeps)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d file(s) could not be processed\n", failed)
	}
	return nil
}

// watchProject blocks, re-running the analysis whenever the source tree
// changes, until the context is cancelled.
func watchProject(ctx context.Context, a *analyzer.Analyzer, cfg *config.Config, root string) error {
	w, err := watcher.New(root, []string{".java"})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl+C to stop)")
	err = w.Run(ctx, func(changed []string) {
		fmt.Fprintf(os.Stderr, "%d file(s) changed, re-analyzing\n", len(changed))
		if err := analyzeProject(ctx, a, cfg, root); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
