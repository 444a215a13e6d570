package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/depgraph"
)

var graphOutput string

// graphCmd exports the project dependency graph in DOT format.
var graphCmd = &cobra.Command{
	Use:   "graph <root>",
	Short: "Export the project dependency graph as Graphviz DOT",
	Long: `Walk the directory tree rooted at <root> and export a directed graph
with one vertex per class and dependency, suitable for rendering:

  depscope graph . -o deps.dot
  dot -Tsvg deps.dot -o deps.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "write DOT to this file instead of stdout")
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newAnalyzer(cfg, NewCLIProgressReporter(quietFlag))
	if err != nil {
		return err
	}

	classes, fileErrs, err := a.ProjectClassReports(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to analyze project %s: %w", args[0], err)
	}
	reportFailures(fileErrs)

	g, err := depgraph.Build(classes)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	out := os.Stdout
	if graphOutput != "" {
		f, err := os.Create(graphOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", graphOutput, err)
		}
		defer f.Close()
		out = f
	}

	return depgraph.WriteDOT(g, out)
}
