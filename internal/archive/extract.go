package archive

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ExtractAll reconstructs the archive's relative directory structure under
// destDir. Entry names are validated before anything is written: a name that
// would resolve outside destDir fails the whole extraction with
// ErrUnsafeEntry.
func ExtractAll(archivePath, destDir string) error {
	r, err := open(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			names = append(names, "")
			continue
		}
		name, err := safeName(f.Name)
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	for i, f := range r.File {
		name := names[i]
		if name == "" {
			continue
		}
		dstPath := filepath.Join(destDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
			return fmt.Errorf("extract %s: %w", name, err)
		}
		if err := extractEntry(f, dstPath); err != nil {
			return fmt.Errorf("extract %s: %w", name, err)
		}
	}
	return nil
}

type zipEntry interface {
	Open() (io.ReadCloser, error)
}

func extractEntry(f zipEntry, dstPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// safeName normalizes a zip entry name to a slash-separated relative path and
// rejects names that escape the extraction root.
func safeName(name string) (string, error) {
	raw := name
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnsafeEntry)
	}
	if path.IsAbs(name) || len(name) > 1 && name[1] == ':' {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntry, raw)
	}
	name = path.Clean(name)
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntry, raw)
	}
	return name, nil
}
