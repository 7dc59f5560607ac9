package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigName = "config.yaml"
	EnvConfigPath     = "S3KEEP_CONFIG"
)

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/etc/s3keep", DefaultConfigName)
	}
	return filepath.Join(home, ".config", "s3keep", DefaultConfigName)
}

func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath()
}
