// Package doctor runs startup health checks: config, store reachability, and
// local working directories.
package doctor

import (
	"context"
	"fmt"
	"os"
	"time"

	"S3Keep/internal/config"
	"S3Keep/internal/s3"
)

type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

func Run(ctx context.Context, cfg *config.Config) []CheckResult {
	var results []CheckResult

	if err := config.Validate(cfg); err != nil {
		results = append(results, CheckResult{Name: "config", OK: false, Detail: err.Error()})
	} else {
		results = append(results, CheckResult{Name: "config", OK: true, Detail: "configuration valid"})
	}

	if cfg != nil && cfg.S3 != nil {
		ok, detail := checkS3(ctx, cfg)
		results = append(results, CheckResult{Name: "s3", OK: ok, Detail: detail})
	} else {
		results = append(results, CheckResult{Name: "s3", OK: false, Detail: "s3 not configured"})
	}

	if cfg != nil {
		ok, detail := checkDirs(cfg.Dirs)
		results = append(results, CheckResult{Name: "dirs", OK: ok, Detail: detail})
	}

	return results
}

func checkS3(ctx context.Context, cfg *config.Config) (bool, string) {
	client, err := s3.New(ctx, s3.Options{
		Endpoint:           cfg.S3.Endpoint,
		Region:             cfg.S3.Region,
		AccessKey:          cfg.S3.AccessKey,
		SecretKey:          cfg.S3.SecretKey,
		Bucket:             cfg.S3.Bucket,
		InsecureSkipVerify: cfg.S3.TLS != nil && cfg.S3.TLS.InsecureSkipVerify,
	})
	if err != nil {
		return false, fmt.Sprintf("s3 client init failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := client.ListObjects(ctx); err != nil {
		return false, fmt.Sprintf("s3 list failed: %v", err)
	}
	return true, fmt.Sprintf("s3 OK (bucket=%s)", cfg.S3.Bucket)
}

func checkDirs(dirs config.DirsConfig) (bool, string) {
	if err := config.EnsureDirs(dirs); err != nil {
		return false, err.Error()
	}
	f, err := os.CreateTemp(dirs.Temp, "s3keep-doctor-*")
	if err != nil {
		return false, fmt.Sprintf("temp dir not writable: %v", err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true, fmt.Sprintf("working dirs writable (%s, %s, %s)", dirs.Downloads, dirs.Backups, dirs.Temp)
}
