package minio

import (
	"time"

	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/pkg/log"
	pkgMinio "legaldata-srv/pkg/minio"
)

const contentTypeMarkdown = "text/markdown; charset=utf-8"

// Options configures where mirrored READMEs land.
type Options struct {
	Bucket       string
	ObjectPrefix string
	// PresignExpiry of zero skips the download URL.
	PresignExpiry time.Duration
}

type implRepository struct {
	minio pkgMinio.MinIO
	l     log.Logger
	opts  Options
}

// New returns a ReadmeRepository that mirrors the README to object storage.
func New(minio pkgMinio.MinIO, l log.Logger, opts Options) repository.ReadmeRepository {
	return &implRepository{
		minio: minio,
		l:     l,
		opts:  opts,
	}
}
