package cli

import (
	"fmt"

	"github.com/performancecopilot/cursorbuf"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the cursorbuf version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "cursorbuf version %s\n", cursorbuf.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
