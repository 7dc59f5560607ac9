package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:     "upload <file> [key]",
	Aliases: []string{"create"},
	Short:   "Upload a local file to the bucket",
	Long:    "Upload a local file to the configured bucket. The object key defaults to the file's base name.",
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	localPath := filepath.Clean(args[0])

	if _, err := os.Stat(localPath); err != nil {
		return fmt.Errorf("file not found: %s", localPath)
	}

	key := filepath.Base(localPath)
	if len(args) == 2 {
		key = args[1]
	}

	_, client, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := client.UploadFile(ctx, key, localPath, nil); err != nil {
		return err
	}
	cmd.Printf("Uploaded %q to bucket %q as %q\n", localPath, client.Bucket(), key)
	return nil
}
