package cmd

import (
	"github.com/spf13/cobra"
)

var listBuckets bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listBuckets, "buckets", false, "List all buckets instead of objects")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List objects in the configured bucket (or all buckets)",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, client, err := setup(ctx)
	if err != nil {
		return err
	}

	if listBuckets {
		buckets, err := client.ListBuckets(ctx)
		if err != nil {
			return err
		}
		if len(buckets) == 0 {
			cmd.Println("No buckets found.")
			return nil
		}
		for _, name := range buckets {
			cmd.Println(name)
		}
		cmd.Printf("\n%d buckets\n", len(buckets))
		return nil
	}

	objects, err := client.ListObjects(ctx)
	if err != nil {
		return err
	}
	if len(objects) == 0 {
		cmd.Printf("No objects in bucket %q.\n", client.Bucket())
		return nil
	}
	for _, obj := range objects {
		cmd.Printf("%12d  %s  %s\n", obj.Size, obj.LastModified.Format("2006-01-02 15:04:05"), obj.Key)
	}
	cmd.Printf("\n%d objects in bucket %q\n", len(objects), client.Bucket())
	return nil
}
