package s3

import "path"

const ArchivesPrefix = "archives"

// ArchiveKey is where an uploaded backup archive lives in the bucket.
func ArchiveKey(filename string) string {
	return path.Join(ArchivesPrefix, filename)
}
