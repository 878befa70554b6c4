package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nala-lang/nala/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nala",
	Short: "Nala interpreter",
	Long: `nala is a tree-walking interpreter for the Nala scripting language.

Nala is dynamically evaluated but statically checked: primitive values,
arrays, objects, first-class functions with closures, enums with a single
type parameter, and structs.`,
	Version: config.Version,
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(config.ExitUsageError)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
