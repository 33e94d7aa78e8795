package repository

import (
	"context"

	"legaldata-srv/internal/model"
)

// ReadmeRepository stores a rendered README.
type ReadmeRepository interface {
	SaveReadme(ctx context.Context, opts SaveReadmeOptions) (SaveReadmeOutput, error)
}

// SnapshotRepository keeps the totals of the latest run.
type SnapshotRepository interface {
	GetLatestSnapshot(ctx context.Context) (*model.Snapshot, error)
	SaveSnapshot(ctx context.Context, opts SaveSnapshotOptions) error
}
