package blobstore

import (
	"context"
	"fmt"

	"github.com/scribepipe/scribepipe/internal/common"
)

// NewStore builds the configured backend.
func NewStore(ctx context.Context, cfg common.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "local", "":
		return NewLocalStore(cfg.RootDir, cfg.BaseURL, []byte(cfg.SigningSecret))
	case "s3":
		return NewS3Store(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Endpoint:  cfg.Endpoint,
		})
	default:
		return nil, common.ConfigurationError(fmt.Sprintf("unknown storage backend %q", cfg.Backend), nil)
	}
}
