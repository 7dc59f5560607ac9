package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"S3Keep/internal/config"
	"S3Keep/internal/doctor"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, store reachability, and local directories",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	v, err := config.Load()
	if err != nil {
		return err
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		return err
	}

	results := doctor.Run(cmd.Context(), cfg)
	failed := 0
	for _, r := range results {
		status := "OK"
		if !r.OK {
			status = "FAIL"
			failed++
		}
		cmd.Printf("[%4s] %-8s %s\n", status, r.Name, r.Detail)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	cmd.Println("All checks passed.")
	return nil
}
