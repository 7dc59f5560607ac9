// Package backup turns a bucket into a local zip snapshot and back.
//
// A run is strictly sequential: enumerate, then fetch and archive one object
// at a time through a temp staging file, then finalize. The first fetch
// failure aborts the whole run; a partial backup is worse than no backup.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"S3Keep/internal/archive"
	"S3Keep/internal/config"
	"S3Keep/internal/logging"
)

const timestampLayout = "20060102_150405"

// Create snapshots every object of the store's bucket into a timestamped zip
// under dirs.Backups and returns its verified descriptor.
func Create(ctx context.Context, store Store, dirs config.DirsConfig) (*Descriptor, error) {
	if err := config.EnsureDirs(dirs); err != nil {
		return nil, &BackupError{Err: err}
	}

	objects, err := store.ListObjects(ctx)
	if err != nil {
		return nil, &BackupError{Err: fmt.Errorf("list objects: %w", err)}
	}
	if len(objects) == 0 {
		return nil, ErrNoObjects
	}

	filename := fmt.Sprintf("%s_%s.zip", store.Bucket(), time.Now().Format(timestampLayout))
	archivePath := filepath.Join(dirs.Backups, filename)

	w, err := archive.NewWriter(archivePath)
	if err != nil {
		return nil, &BackupError{Err: err}
	}

	logging.Log.Info().Str("archive", archivePath).Int("objects", len(objects)).Msg("backup started")

	for _, obj := range objects {
		if err := transferObject(ctx, store, w, obj.Key, dirs.Temp); err != nil {
			_ = w.Close()
			return nil, &BackupError{Key: obj.Key, Err: err}
		}
	}

	if err := w.Close(); err != nil {
		return nil, &BackupError{Err: err}
	}

	desc, err := Info(archivePath)
	if err != nil {
		return nil, &BackupError{Err: err}
	}
	desc.Checksum, err = ChecksumFile(archivePath)
	if err != nil {
		return nil, &BackupError{Err: err}
	}

	logging.Log.Info().Str("archive", archivePath).Int("files", desc.FileCount).Msg("backup completed")
	return desc, nil
}

// transferObject stages one object to a temp file, appends it to the archive
// under its key, and removes the staging file whether or not the append
// succeeded.
func transferObject(ctx context.Context, store Store, w *archive.Writer, key, tempDir string) error {
	stagePath := filepath.Join(tempDir, stagingName(key))
	defer os.Remove(stagePath)

	if err := store.DownloadToFile(ctx, key, stagePath); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if _, err := w.AddFile(key, stagePath); err != nil {
		return err
	}
	return nil
}

func stagingName(key string) string {
	return strings.ReplaceAll(key, "/", "_")
}
