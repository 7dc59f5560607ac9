package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Watch local directories and mirror changes to the bucket",
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cmd.Println("Auto-sync is not available yet.")
	return nil
}
