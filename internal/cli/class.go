package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// classCmd reports the dependencies of every class declared in one file.
var classCmd = &cobra.Command{
	Use:   "class <file.java>",
	Short: "Report the dependencies of the classes in one source file",
	Long: `Parse a single Java source file and print a dependency report for
every top-level class it declares, including nested classes.

Examples:
  depscope class src/main/java/com/example/Service.java
  depscope class --format json Service.java`,
	Args: cobra.ExactArgs(1),
	RunE: runClass,
}

func init() {
	rootCmd.AddCommand(classCmd)
}

func runClass(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newAnalyzer(cfg, nil)
	if err != nil {
		return err
	}

	reports, err := a.ClassDependencies(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", args[0], err)
	}

	if cfg.Output.Format == "json" {
		return printJSON(os.Stdout, reports)
	}
	for _, report := range reports {
		fmt.Print(report.String())
	}
	return nil
}
