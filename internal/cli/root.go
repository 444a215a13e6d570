package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	formatFlag string
	quietFlag  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "Analyze class dependencies in Java source trees",
	Long: `depscope parses Java source files with tree-sitter and reports which
named types each class references: imports, inheritance, implemented
interfaces, field and parameter types, local variables, and object
instantiations.

Reports come in three scopes:
  class    every class (and nested class) declared in one file
  package  all classes directly inside one directory
  project  every class in a whole directory tree`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: tree or json (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")

	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
}
