// Package archive reads and writes the zip containers produced by backup
// runs. Entry names mirror the object key space of the source bucket.
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"

	"S3Keep/internal/logging"
)

var (
	// ErrCorruptArchive means the zip central directory could not be parsed.
	ErrCorruptArchive = errors.New("corrupt archive")
	// ErrUnsafeEntry means an entry name would escape the extraction root.
	ErrUnsafeEntry = errors.New("unsafe archive entry")
)

// Entry describes one named member of an archive.
type Entry struct {
	Name             string
	CompressedSize   uint64
	UncompressedSize uint64
}

// File is an entry together with its full content.
type File struct {
	Name    string
	Content []byte
}

// Writer appends named byte streams to a single zip file.
type Writer struct {
	f  *os.File
	zw *zip.Writer
}

// NewWriter creates or overwrites the archive at path.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create archive %s: %w", path, err)
	}
	return &Writer{f: f, zw: zip.NewWriter(f)}, nil
}

// Add writes one entry under name from r.
func (w *Writer) Add(name string, r io.Reader) error {
	ew, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("archive entry %s: %w", name, err)
	}
	if _, err := io.Copy(ew, r); err != nil {
		return fmt.Errorf("archive entry %s: %w", name, err)
	}
	return nil
}

// AddFile writes the local file at srcPath under name. A source that vanished
// between enumeration and write is skipped, not fatal; added reports whether
// the entry was written.
func (w *Writer) AddFile(name, srcPath string) (added bool, err error) {
	f, err := os.Open(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Log.Warn().Str("entry", name).Str("path", srcPath).Msg("source vanished, skipping entry")
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer f.Close()
	if err := w.Add(name, f); err != nil {
		return false, err
	}
	return true, nil
}

// Close flushes the central directory and closes the file.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		_ = w.f.Close()
		return fmt.Errorf("close archive: %w", err)
	}
	return w.f.Close()
}
