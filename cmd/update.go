package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <key> <file>",
	Short: "Replace an existing object with a local file",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	key := args[0]
	localPath := filepath.Clean(args[1])

	if _, err := os.Stat(localPath); err != nil {
		return fmt.Errorf("file not found: %s", localPath)
	}

	_, client, err := setup(ctx)
	if err != nil {
		return err
	}

	exists, err := client.ObjectExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		cmd.Printf("Object %q not found in bucket %q; use 'upload' to create it.\n", key, client.Bucket())
		return nil
	}

	if err := client.UploadFile(ctx, key, localPath, nil); err != nil {
		return err
	}
	cmd.Printf("Updated %q in bucket %q\n", key, client.Bucket())
	return nil
}
