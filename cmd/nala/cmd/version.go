package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nala-lang/nala/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nala version %s\n", config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
