//go:build integration

package integration

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"S3Keep/internal/backup"
	"S3Keep/internal/config"
	"S3Keep/internal/organize"
	"S3Keep/internal/s3"
)

func TestMinIO_BackupRestoreOrganize(t *testing.T) {
	endpoint, accessKey, secretKey, bucket := getMinIOEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := s3.New(ctx, s3.Options{
		Endpoint:           endpoint,
		Region:             "us-east-1",
		AccessKey:          accessKey,
		SecretKey:          secretKey,
		Bucket:             bucket,
		InsecureSkipVerify: true,
	})
	if err != nil {
		t.Fatalf("s3.New: %v", err)
	}
	if err := client.CreateBucket(ctx); err != nil {
		t.Fatalf("CreateBucket: %v", err)
	}

	seed := map[string][]byte{
		"a.txt":     []byte("five5"),
		"sub/b.txt": []byte("ten chars!"),
	}
	for key, content := range seed {
		if err := client.PutObject(ctx, key, bytes.NewReader(content), int64(len(content)), nil); err != nil {
			t.Fatalf("PutObject %s: %v", key, err)
		}
	}
	t.Cleanup(func() {
		objects, _ := client.ListObjects(context.Background())
		for _, obj := range objects {
			_ = client.DeleteObject(context.Background(), obj.Key)
		}
	})

	root := t.TempDir()
	dirs := config.DirsConfig{
		Downloads: filepath.Join(root, "downloads"),
		Backups:   filepath.Join(root, "backups"),
		Temp:      filepath.Join(root, "temp"),
	}

	desc, err := backup.Create(ctx, client, dirs)
	if err != nil {
		t.Fatalf("backup.Create: %v", err)
	}
	if desc.FileCount != len(seed) {
		t.Errorf("FileCount = %d, want %d", desc.FileCount, len(seed))
	}

	for key := range seed {
		if err := client.DeleteObject(ctx, key); err != nil {
			t.Fatalf("DeleteObject %s: %v", key, err)
		}
	}

	if err := backup.Restore(ctx, client, desc.Path, dirs); err != nil {
		t.Fatalf("backup.Restore: %v", err)
	}
	for key, want := range seed {
		rc, err := client.GetObject(ctx, key)
		if err != nil {
			t.Fatalf("GetObject %s after restore: %v", key, err)
		}
		got, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", key, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("restored %s = %q, want %q", key, got, want)
		}
	}

	archiveKey, err := backup.Upload(ctx, client, desc)
	if err != nil {
		t.Fatalf("backup.Upload: %v", err)
	}
	versions, err := client.ListObjectVersions(ctx, archiveKey)
	if err != nil {
		t.Fatalf("ListObjectVersions: %v", err)
	}
	if len(versions) == 0 {
		t.Error("uploaded archive has no versions")
	}
	t.Cleanup(func() { _ = client.DeleteObject(context.Background(), archiveKey) })

	organizer := organize.New(config.Default().Organize.Categories)
	moved, failed, err := organizer.Organize(ctx, client)
	if err != nil {
		t.Fatalf("Organize: %v", err)
	}
	if failed != 0 {
		t.Errorf("organize failed = %d", failed)
	}
	// Only a.txt sits at the root; sub/b.txt and the archives prefix are
	// already foldered.
	if len(moved) != 1 || moved[0].To != "documents/a.txt" {
		t.Errorf("moved = %+v, want a.txt -> documents/a.txt", moved)
	}

	movedAgain, _, err := organizer.Organize(ctx, client)
	if err != nil {
		t.Fatalf("second Organize: %v", err)
	}
	if len(movedAgain) != 0 {
		t.Errorf("second organize moved %d objects, want 0", len(movedAgain))
	}
}
