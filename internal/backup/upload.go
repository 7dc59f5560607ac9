package backup

import (
	"context"
	"fmt"
	"time"

	"S3Keep/internal/logging"
	"S3Keep/internal/s3"
)

const createdBy = "s3keep"

// Upload pushes a finished backup archive to the bucket under the archives
// prefix, enabling bucket versioning first so repeated uploads of the same
// filename keep their history.
func Upload(ctx context.Context, store Store, desc *Descriptor) (string, error) {
	if err := store.SetBucketVersioning(ctx, true); err != nil {
		return "", fmt.Errorf("enable versioning: %w", err)
	}

	checksum := desc.Checksum
	if checksum == "" {
		var err error
		checksum, err = ChecksumFile(desc.Path)
		if err != nil {
			return "", err
		}
	}

	metadata := map[string]string{
		"archive-type":    "zip",
		"created-by":      createdBy,
		"upload-time":     time.Now().UTC().Format(time.RFC3339),
		"checksum-blake3": checksum,
	}

	key := s3.ArchiveKey(desc.Filename)
	if err := store.UploadFile(ctx, key, desc.Path, metadata); err != nil {
		return "", fmt.Errorf("upload archive: %w", err)
	}
	logging.Log.Info().Str("key", key).Str("checksum", checksum).Msg("archive uploaded")
	return key, nil
}
