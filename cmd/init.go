package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"S3Keep/internal/config"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ResolveConfigPath()
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}
	if err := config.Write(config.Default(), path); err != nil {
		return err
	}
	cmd.Printf("Wrote default config to %s\n", path)
	cmd.Println("Fill in s3.endpoint, s3.bucket, and credentials before running other commands.")
	return nil
}
