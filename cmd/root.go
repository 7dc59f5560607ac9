package cmd

import (
	"github.com/spf13/cobra"

	"S3Keep/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "s3keep",
	Short: "File manager for a single S3 bucket with zip backup and restore",
	Long:  "S3Keep uploads, downloads, organizes, and snapshots the objects of one S3-compatible bucket, with local zip backups and scheduled runs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
