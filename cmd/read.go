package cmd

import (
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"S3Keep/internal/s3"
)

var (
	readDownload bool
	readOutput   string
)

// textExtensions are rendered inline; anything else is treated as binary.
var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".json": true,
	".xml":  true,
	".csv":  true,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readDownload, "download", false, "Also save the object under the downloads directory")
	readCmd.Flags().StringVar(&readOutput, "output", "", "Download to this path instead of the downloads directory")
}

var readCmd = &cobra.Command{
	Use:   "read <key>",
	Short: "Print an object's content and optionally download it",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	key := args[0]

	cfg, client, err := setup(ctx)
	if err != nil {
		return err
	}

	if textExtensions[strings.ToLower(path.Ext(key))] {
		rc, err := client.GetObject(ctx, key)
		if err != nil {
			if s3.IsNotFound(err) {
				cmd.Printf("Object %q not found in bucket %q.\n", key, client.Bucket())
				return nil
			}
			return err
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return err
		}
		cmd.Printf("--- %s ---\n%s\n", key, content)
	} else {
		cmd.Printf("Binary object %q: content not displayed.\n", key)
	}

	if readDownload || readOutput != "" {
		dest := readOutput
		if dest == "" {
			dest = filepath.Join(cfg.Dirs.Downloads, filepath.FromSlash(key))
		}
		if err := client.DownloadToFile(ctx, key, dest); err != nil {
			if s3.IsNotFound(err) {
				cmd.Printf("Object %q not found in bucket %q.\n", key, client.Bucket())
				return nil
			}
			return err
		}
		cmd.Printf("Downloaded %q to %s\n", key, dest)
	}
	return nil
}
