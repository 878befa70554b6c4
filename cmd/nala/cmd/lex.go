package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nala-lang/nala/pkg/cli"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Nala script and print the token stream",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(cli.LexFile(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
