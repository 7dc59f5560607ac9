package cmd

import (
	"github.com/spf13/cobra"

	"S3Keep/internal/organize"
)

func init() {
	rootCmd.AddCommand(organizeCmd)
}

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Move root-level objects into folders by file type",
	RunE:  runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, client, err := setup(ctx)
	if err != nil {
		return err
	}

	organizer := organize.New(cfg.Organize.Categories)
	moved, failed, err := organizer.Organize(ctx, client)
	if err != nil {
		return err
	}

	for _, m := range moved {
		cmd.Printf("  %s -> %s\n", m.From, m.To)
	}
	cmd.Printf("Organized %d objects", len(moved))
	if failed > 0 {
		cmd.Printf(" (%d failed)", failed)
	}
	cmd.Println()
	return nil
}
