package backup

import (
	"context"

	"S3Keep/internal/s3"
)

// Store is the subset of gateway operations the backup engine needs.
// *s3.Client implements this interface.
type Store interface {
	Bucket() string
	ListObjects(ctx context.Context) ([]s3.Object, error)
	DownloadToFile(ctx context.Context, key, localPath string) error
	UploadFile(ctx context.Context, key, localPath string, metadata map[string]string) error
	SetBucketVersioning(ctx context.Context, enabled bool) error
}
