package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/video/repository"
	pkgRedis "insight-srv/pkg/redis"
)

const statsKeyPrefix = "video:stats:"

func statsKey(videoID string) string {
	return statsKeyPrefix + videoID
}

func (r *implCacheRepository) GetStatistics(ctx context.Context, videoID string) (model.VideoStats, error) {
	data, err := r.redis.Get(ctx, statsKey(videoID))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return model.VideoStats{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "video.repository.redis.GetStatistics: Failed to read cache: %v", err)
		return model.VideoStats{}, fmt.Errorf("%w: %w", repository.ErrCacheGetFailed, err)
	}

	var stats model.VideoStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		r.l.Errorf(ctx, "video.repository.redis.GetStatistics: Failed to unmarshal stats: %v", err)
		return model.VideoStats{}, fmt.Errorf("%w: %w", repository.ErrCacheGetFailed, err)
	}
	return stats, nil
}

func (r *implCacheRepository) SaveStatistics(ctx context.Context, stats model.VideoStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("%w: %w", repository.ErrCacheSetFailed, err)
	}
	if err := r.redis.Set(ctx, statsKey(stats.ID), data, ttl); err != nil {
		r.l.Errorf(ctx, "video.repository.redis.SaveStatistics: Failed to save to cache: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrCacheSetFailed, err)
	}
	return nil
}
