package backup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"S3Keep/internal/archive"
)

func writeZip(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	w, err := archive.NewWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range entries {
		if err := w.Add(name, bytes.NewReader(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()

	t.Run("reports verified entry count", func(t *testing.T) {
		path := filepath.Join(dir, "good.zip")
		writeZip(t, path, map[string][]byte{
			"a.txt": []byte("a"),
			"b.txt": []byte("b"),
			"c.txt": []byte("c"),
		})
		desc, err := Info(path)
		if err != nil {
			t.Fatalf("Info: %v", err)
		}
		if desc.FileCount != 3 {
			t.Errorf("FileCount = %d, want 3", desc.FileCount)
		}
		if desc.Filename != "good.zip" {
			t.Errorf("Filename = %q", desc.Filename)
		}
		if desc.TotalSizeBytes == 0 {
			t.Error("TotalSizeBytes = 0")
		}
	})

	t.Run("corrupt archive reports zero files, no error", func(t *testing.T) {
		path := filepath.Join(dir, "bad.zip")
		if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
			t.Fatal(err)
		}
		desc, err := Info(path)
		if err != nil {
			t.Fatalf("Info(corrupt) err = %v, want nil", err)
		}
		if desc.FileCount != 0 {
			t.Errorf("FileCount = %d, want 0", desc.FileCount)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := Info(filepath.Join(dir, "missing.zip")); err == nil {
			t.Error("Info(missing) err = nil, want error")
		}
	})
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	older := filepath.Join(dir, "bucket_20240101_020000.zip")
	newer := filepath.Join(dir, "bucket_20240301_020000.zip")
	writeZip(t, older, map[string][]byte{"old.txt": []byte("old")})
	writeZip(t, newer, map[string][]byte{"new.txt": []byte("new")})

	base := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, base, base); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(newer, base.Add(30*time.Minute), base.Add(30*time.Minute)); err != nil {
		t.Fatal(err)
	}

	// A corrupt archive still lists, with a zero count.
	corrupt := filepath.Join(dir, "bucket_corrupt.zip")
	if err := os.WriteFile(corrupt, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(corrupt, base.Add(-time.Hour), base.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}

	descriptors := List(dir)
	if len(descriptors) != 3 {
		t.Fatalf("List returned %d descriptors, want 3", len(descriptors))
	}
	if descriptors[0].Filename != "bucket_20240301_020000.zip" {
		t.Errorf("first = %q, want the newest archive", descriptors[0].Filename)
	}
	if descriptors[1].Filename != "bucket_20240101_020000.zip" {
		t.Errorf("second = %q", descriptors[1].Filename)
	}
	if descriptors[2].Filename != "bucket_corrupt.zip" || descriptors[2].FileCount != 0 {
		t.Errorf("corrupt archive listed as %+v", descriptors[2])
	}

	if got := List(filepath.Join(dir, "nope")); len(got) != 0 {
		t.Errorf("List(missing dir) = %v, want empty", got)
	}
}

func TestUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bucket_20240101_020000.zip")
	writeZip(t, path, map[string][]byte{"a.txt": []byte("a")})

	desc, err := Info(path)
	if err != nil {
		t.Fatal(err)
	}

	store := newFakeStore("archive-bucket")
	key, err := Upload(context.Background(), store, desc)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if key != "archives/bucket_20240101_020000.zip" {
		t.Errorf("key = %q", key)
	}
	if !store.versioning {
		t.Error("bucket versioning was not enabled before upload")
	}

	md := store.metadata[key]
	if md["archive-type"] != "zip" {
		t.Errorf("archive-type = %q", md["archive-type"])
	}
	if md["created-by"] != "s3keep" {
		t.Errorf("created-by = %q", md["created-by"])
	}
	if _, err := time.Parse(time.RFC3339, md["upload-time"]); err != nil {
		t.Errorf("upload-time %q: %v", md["upload-time"], err)
	}
	want, err := ChecksumFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if md["checksum-blake3"] != want {
		t.Errorf("checksum-blake3 = %q, want %q", md["checksum-blake3"], want)
	}
}
