package repository

import (
	"context"
	"time"

	"insight-srv/internal/model"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetStatistics returns ErrCacheMiss when nothing is cached for videoID.
	GetStatistics(ctx context.Context, videoID string) (model.VideoStats, error)
	SaveStatistics(ctx context.Context, stats model.VideoStats, ttl time.Duration) error
}
