package repository

import (
	"time"

	"legaldata-srv/internal/model"
)

type SaveReadmeOptions struct {
	RunID       string
	FileName    string
	Content     []byte
	GeneratedAt time.Time
	Totals      map[string]int64
}

type SaveReadmeOutput struct {
	// Locations lists every path or object key written.
	Locations   []string
	DownloadURL string
}

type SaveSnapshotOptions struct {
	Snapshot model.Snapshot
	// TTL of zero keeps the snapshot until it is replaced.
	TTL time.Duration
}
