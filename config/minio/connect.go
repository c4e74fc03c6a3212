package minio

import (
	"context"
	"fmt"

	"chatbot-srv/config"
	"chatbot-srv/pkg/minio"
)

const connectRetries = 3

// Connect creates the MinIO client, connects with retry and makes sure the archive bucket exists.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.ConnectWithRetry(ctx, connectRetries); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure MinIO bucket %s: %w", cfg.Bucket, err)
	}
	return client, nil
}
