package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/internal/model"
	pkgRedis "legaldata-srv/pkg/redis"
)

func (r *implSnapshotRepository) GetLatestSnapshot(ctx context.Context) (*model.Snapshot, error) {
	data, err := r.redis.Get(ctx, keyLatestSnapshot)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}
		r.l.Errorf(ctx, "catalogue.repository.redis.GetLatestSnapshot: Failed to read snapshot: %v", err)
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		r.l.Errorf(ctx, "catalogue.repository.redis.GetLatestSnapshot: Failed to unmarshal snapshot: %v", err)
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

func (r *implSnapshotRepository) SaveSnapshot(ctx context.Context, opts repository.SaveSnapshotOptions) error {
	data, err := json.Marshal(opts.Snapshot)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, keyLatestSnapshot, data, opts.TTL); err != nil {
		r.l.Errorf(ctx, "catalogue.repository.redis.SaveSnapshot: Failed to save snapshot: %v", err)
		return err
	}
	return nil
}
