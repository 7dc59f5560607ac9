package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoBucket = errors.New("s3.bucket is required")

func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.S3 == nil {
		return fmt.Errorf("s3 configuration is required")
	}
	if cfg.S3.Bucket == "" {
		return ErrNoBucket
	}
	if cfg.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required")
	}
	if cfg.Backup.At != "" {
		if _, err := time.Parse("15:04", cfg.Backup.At); err != nil {
			return fmt.Errorf("backup.at %q: expected HH:MM", cfg.Backup.At)
		}
	}
	for category, exts := range cfg.Organize.Categories {
		if category == "" || strings.Contains(category, "/") {
			return fmt.Errorf("organize category %q: must be a plain folder name", category)
		}
		for _, ext := range exts {
			if !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("organize category %q: extension %q must start with '.'", category, ext)
			}
		}
	}
	return nil
}
