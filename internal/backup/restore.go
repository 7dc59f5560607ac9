package backup

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"S3Keep/internal/archive"
	"S3Keep/internal/config"
	"S3Keep/internal/logging"
)

// Restore extracts the archive at archivePath into a fresh temp directory and
// pushes every file back to the bucket under its relative path. Already
// uploaded objects are not rolled back on failure; the extraction directory
// is always removed.
func Restore(ctx context.Context, store Store, archivePath string, dirs config.DirsConfig) error {
	if err := config.EnsureDirs(dirs); err != nil {
		return &RestoreError{Err: err}
	}
	extractDir, err := os.MkdirTemp(dirs.Temp, "restore-")
	if err != nil {
		return &RestoreError{Err: err}
	}
	defer os.RemoveAll(extractDir)

	if err := archive.ExtractAll(archivePath, extractDir); err != nil {
		return &RestoreError{Err: err}
	}

	err = filepath.WalkDir(extractDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(extractDir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if err := store.UploadFile(ctx, key, p, nil); err != nil {
			return &RestoreError{Key: key, Err: err}
		}
		logging.Log.Info().Str("key", key).Msg("restored object")
		return nil
	})
	if err != nil {
		if rerr, ok := err.(*RestoreError); ok {
			return rerr
		}
		return &RestoreError{Err: err}
	}
	return nil
}
