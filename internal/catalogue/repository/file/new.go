package file

import (
	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/pkg/log"
)

const defaultFileMode = 0o644

type implRepository struct {
	l    log.Logger
	path string
}

// New returns a ReadmeRepository that overwrites the file at path.
func New(l log.Logger, path string) repository.ReadmeRepository {
	return &implRepository{
		l:    l,
		path: path,
	}
}
