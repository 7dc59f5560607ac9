package cmd

import (
	"context"

	"S3Keep/internal/config"
	"S3Keep/internal/s3"
)

// setup loads and validates the config and builds the bucket-bound client.
func setup(ctx context.Context) (*config.Config, *s3.Client, error) {
	v, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	client, err := s3.New(ctx, s3.Options{
		Endpoint:           cfg.S3.Endpoint,
		Region:             cfg.S3.Region,
		AccessKey:          cfg.S3.AccessKey,
		SecretKey:          cfg.S3.SecretKey,
		Bucket:             cfg.S3.Bucket,
		InsecureSkipVerify: cfg.S3.TLS != nil && cfg.S3.TLS.InsecureSkipVerify,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}
