package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nala-lang/nala/pkg/cli"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Nala script",
	Long: `Execute a Nala program from a file.

Examples:
  nala run script.nala`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(cli.RunFile(args[0], verbose))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
