package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nala-lang/nala/pkg/cli"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Nala script without running it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(cli.ParseFile(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
