package minio

import (
	"context"
	"fmt"
	"sync"

	"legaldata-srv/config"
	"legaldata-srv/pkg/minio"
)

var (
	instance minio.MinIO
	mu       sync.Mutex
)

// Connect returns the shared mirror client and makes sure the bucket exists.
// It returns a nil client and no error when MinIO is disabled.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := client.CreateBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to create MinIO bucket: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the shared client, if any.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
