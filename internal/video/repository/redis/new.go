package redis

import (
	"insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{redis: redis, l: l}
}
