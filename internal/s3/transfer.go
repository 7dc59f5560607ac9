package s3

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// UploadFile puts a local file under key, overwriting any existing object.
func (c *Client) UploadFile(ctx context.Context, key, localPath string, metadata map[string]string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", localPath, err)
	}
	if err := c.PutObject(ctx, key, f, info.Size(), metadata); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// DownloadToFile fetches key into localPath, creating parent directories.
func (c *Client) DownloadToFile(ctx context.Context, key, localPath string) error {
	rc, err := c.GetObject(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", localPath, err)
	}
	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}
	if _, err := io.Copy(f, rc); err != nil {
		_ = f.Close()
		_ = os.Remove(localPath)
		return fmt.Errorf("write %s: %w", localPath, err)
	}
	return f.Close()
}
