package redis

import (
	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/pkg/log"
	pkgRedis "legaldata-srv/pkg/redis"
)

const keyLatestSnapshot = "catalogue:snapshot:latest"

type implSnapshotRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.SnapshotRepository {
	return &implSnapshotRepository{
		redis: redis,
		l:     l,
	}
}
