package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// packageCmd aggregates dependencies across one directory.
var packageCmd = &cobra.Command{
	Use:   "package <dir>",
	Short: "Report the union of class dependencies in one directory",
	Long: `Process every Java source file directly inside one directory (not its
subdirectories) and print the deduplicated union of each class's own
dependencies.

Examples:
  depscope package src/main/java/com/example
  depscope package --format json .`,
	Args: cobra.ExactArgs(1),
	RunE: runPackage,
}

func init() {
	rootCmd.AddCommand(packageCmd)
}

func runPackage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newAnalyzer(cfg, nil)
	if err != nil {
		return err
	}

	report, fileErrs, err := a.PackageDependencies(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to analyze package %s: %w", args[0], err)
	}
	reportFailures(fileErrs)

	if cfg.Output.Format == "json" {
		return printJSON(os.Stdout, report)
	}
	fmt.Printf("package %s\n", report.PackageName)
	printDeps(os.Stdout, report.PackageDeps)
	return nil
}
