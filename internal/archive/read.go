package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

func open(path string) (*zip.ReadCloser, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		// The reader is still usable on ErrInsecurePath; entry-name safety
		// is enforced by safeName during extraction.
		if errors.Is(err, zip.ErrInsecurePath) {
			return r, nil
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open archive %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, path, err)
	}
	return r, nil
}

// List returns the entries of the archive at path without their content.
func List(path string) ([]Entry, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	entries := make([]Entry, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, Entry{
			Name:             f.Name,
			CompressedSize:   f.CompressedSize64,
			UncompressedSize: f.UncompressedSize64,
		})
	}
	return entries, nil
}

// Count returns the number of file entries in the archive at path.
func Count(path string) (int, error) {
	entries, err := List(path)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ReadAll returns every entry with its full content, in archive order.
func ReadAll(path string) ([]File, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	files := make([]File, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrCorruptArchive, f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrCorruptArchive, f.Name, err)
		}
		files = append(files, File{Name: f.Name, Content: content})
	}
	return files, nil
}
