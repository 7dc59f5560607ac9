package config

import (
	"fmt"
	"os"
)

// EnsureDirs creates the local working directories if missing.
func EnsureDirs(d DirsConfig) error {
	for _, dir := range []string{d.Downloads, d.Backups, d.Temp} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return nil
}
