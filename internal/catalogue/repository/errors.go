package repository

import "errors"

var (
	ErrReadmeSaveFailed = errors.New("repository: failed to save README")
	ErrSnapshotNotFound = errors.New("repository: snapshot not found")
)
