package backup

import (
	"errors"
	"fmt"
)

// ErrNoObjects means the bucket was empty at backup time; the run is
// abandoned but the process carries on.
var ErrNoObjects = errors.New("no objects found in bucket")

// BackupError reports an aborted backup run and the object it failed on.
type BackupError struct {
	Key string
	Err error
}

func (e *BackupError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("backup failed at object %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("backup failed: %v", e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }

// RestoreError reports an aborted restore run. Objects uploaded before the
// failure are not rolled back.
type RestoreError struct {
	Key string
	Err error
}

func (e *RestoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("restore failed at object %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("restore failed: %v", e.Err)
}

func (e *RestoreError) Unwrap() error { return e.Err }
