package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"S3Keep/internal/backup"
	"S3Keep/internal/schedule"
)

var scheduleCadence string

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupInfoCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupUploadCmd)
	backupCmd.AddCommand(backupVersionsCmd)
	backupCmd.AddCommand(backupScheduleCmd)
	backupScheduleCmd.Flags().StringVar(&scheduleCadence, "cadence", "daily", "Backup cadence: daily or weekly")
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, inspect, restore, and schedule zip backups of the bucket",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot every bucket object into a local zip archive",
	RunE:  runBackupCreate,
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, client, err := setup(ctx)
	if err != nil {
		return err
	}

	desc, err := backup.Create(ctx, client, cfg.Dirs)
	if err != nil {
		if errors.Is(err, backup.ErrNoObjects) {
			cmd.Printf("Bucket %q is empty; nothing to back up.\n", client.Bucket())
			return nil
		}
		return err
	}

	cmd.Println("Backup created:")
	printDescriptor(cmd, desc)
	return nil
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List local backup archives, most recent first",
	RunE:  runBackupList,
}

func runBackupList(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	descriptors := backup.List(cfg.Dirs.Backups)
	if len(descriptors) == 0 {
		cmd.Println("No backups found.")
		return nil
	}
	for i, desc := range descriptors {
		cmd.Printf("%d. %s\n", i+1, desc.Filename)
		cmd.Printf("   Created: %s  Files: %d  Size: %s\n",
			desc.CreatedAt.Format("2006-01-02 15:04:05"), desc.FileCount, formatSize(desc.TotalSizeBytes))
	}
	return nil
}

var backupInfoCmd = &cobra.Command{
	Use:   "info <archive>",
	Short: "Show details of a backup archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupInfo,
}

func runBackupInfo(cmd *cobra.Command, args []string) error {
	desc, err := backup.Info(args[0])
	if err != nil {
		return err
	}
	printDescriptor(cmd, desc)
	if desc.FileCount == 0 {
		cmd.Println("  Warning: archive holds no readable entries (corrupt or empty).")
	}
	return nil
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Upload every entry of a backup archive back to the bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupRestore,
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, client, err := setup(ctx)
	if err != nil {
		return err
	}

	if err := backup.Restore(ctx, client, args[0], cfg.Dirs); err != nil {
		return err
	}
	cmd.Printf("Backup %q restored to bucket %q\n", args[0], client.Bucket())
	return nil
}

var backupUploadCmd = &cobra.Command{
	Use:   "upload <archive>",
	Short: "Upload a backup archive to the bucket's versioned archives prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupUpload,
}

func runBackupUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, client, err := setup(ctx)
	if err != nil {
		return err
	}

	desc, err := backup.Info(args[0])
	if err != nil {
		return err
	}
	key, err := backup.Upload(ctx, client, desc)
	if err != nil {
		return err
	}
	cmd.Printf("Uploaded archive to s3://%s/%s\n", client.Bucket(), key)
	return nil
}

var backupVersionsCmd = &cobra.Command{
	Use:   "versions <key>",
	Short: "List stored versions of an uploaded archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupVersions,
}

func runBackupVersions(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, client, err := setup(ctx)
	if err != nil {
		return err
	}

	versions, err := client.ListObjectVersions(ctx, args[0])
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		cmd.Printf("No versions found for %q.\n", args[0])
		return nil
	}
	for _, v := range versions {
		latest := ""
		if v.IsLatest {
			latest = "  (latest)"
		}
		cmd.Printf("%s  %s  %s%s\n", v.VersionID, v.LastModified.Format("2006-01-02 15:04:05"), formatSize(v.Size), latest)
	}
	return nil
}

var backupScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run backups on a daily or weekly schedule until interrupted",
	RunE:  runBackupSchedule,
}

func runBackupSchedule(cmd *cobra.Command, args []string) error {
	cadence, err := schedule.ParseCadence(scheduleCadence)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, client, err := setup(ctx)
	if err != nil {
		return err
	}

	runner := schedule.NewRunner()
	runner.Schedule(ctx, cadence, cfg.Backup.At, func(ctx context.Context) error {
		_, err := backup.Create(ctx, client, cfg.Dirs)
		if errors.Is(err, backup.ErrNoObjects) {
			return nil
		}
		return err
	})

	cmd.Printf("Scheduled %s backups of bucket %q at %s. Press Ctrl+C to stop.\n",
		cadence, client.Bucket(), cfg.Backup.At)
	<-ctx.Done()
	runner.Stop()
	cmd.Println("Scheduler stopped.")
	return nil
}

func printDescriptor(cmd *cobra.Command, desc *backup.Descriptor) {
	cmd.Printf("  Location: %s\n", desc.Path)
	cmd.Printf("  Files:    %d\n", desc.FileCount)
	cmd.Printf("  Size:     %s\n", formatSize(desc.TotalSizeBytes))
	cmd.Printf("  Created:  %s\n", desc.CreatedAt.Format("2006-01-02 15:04:05"))
	if desc.Checksum != "" {
		cmd.Printf("  BLAKE3:   %s\n", desc.Checksum)
	}
}

func formatSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes >= mb {
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	}
	return fmt.Sprintf("%d B", bytes)
}
