package backup

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"S3Keep/internal/archive"
)

// Descriptor summarizes a finished backup archive without holding its
// content. Immutable once returned.
type Descriptor struct {
	Filename       string
	Path           string
	FileCount      int
	TotalSizeBytes int64
	Checksum       string
	CreatedAt      time.Time
}

// Info stats the archive and re-opens it to count entries. The count is never
// trusted from the write pass: a corrupt or truncated archive reports 0
// rather than failing.
func Info(path string) (*Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	count, err := archive.Count(path)
	if err != nil {
		if !errors.Is(err, archive.ErrCorruptArchive) {
			return nil, err
		}
		count = 0
	}

	return &Descriptor{
		Filename:       filepath.Base(path),
		Path:           path,
		FileCount:      count,
		TotalSizeBytes: info.Size(),
		CreatedAt:      info.ModTime(),
	}, nil
}

// List returns descriptors for every readable zip in backupDir, most recent
// first. Unreadable files are silently excluded.
func List(backupDir string) []Descriptor {
	matches, err := filepath.Glob(filepath.Join(backupDir, "*.zip"))
	if err != nil {
		return nil
	}

	var descriptors []Descriptor
	for _, path := range matches {
		desc, err := Info(path)
		if err != nil {
			continue
		}
		descriptors = append(descriptors, *desc)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].CreatedAt.After(descriptors[j].CreatedAt)
	})
	return descriptors
}
