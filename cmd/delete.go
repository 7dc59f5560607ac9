package cmd

import (
	"github.com/spf13/cobra"

	"S3Keep/internal/s3"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete an object from the bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	key := args[0]

	_, client, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteObject(ctx, key); err != nil {
		if s3.IsNotFound(err) {
			cmd.Printf("Object %q not found in bucket %q.\n", key, client.Bucket())
			return nil
		}
		return err
	}
	cmd.Printf("Deleted %q from bucket %q\n", key, client.Bucket())
	return nil
}
