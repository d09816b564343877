package usecase

import (
	"context"
	"errors"

	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/internal/video/repository"
	"insight-srv/pkg/util"
	"insight-srv/pkg/youtube"
)

func (uc *implUseCase) ResolveVideoID(url string) (string, error) {
	id := video.ExtractVideoID(url)
	if id == "" {
		return "", video.ErrInvalidURL
	}
	return id, nil
}

func (uc *implUseCase) GetStatistics(ctx context.Context, videoID string) (model.VideoStats, error) {
	key := uc.apiKey(ctx)
	if key == "" {
		return model.VideoStats{}, video.ErrAPIKeyMissing
	}

	// 1. Cache lookup. Statistics are public; the key only spends quota, so a hit skips it.
	if uc.cacheEnabled() {
		stats, err := uc.cache.GetStatistics(ctx, videoID)
		if err == nil {
			uc.l.Debugf(ctx, "video.usecase.GetStatistics: cache hit for %s", videoID)
			return stats, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "video.usecase.GetStatistics: cache read failed for %s: %v", videoID, err)
		}
	}

	// 2. Provider
	v, err := uc.yt.GetVideo(ctx, key, videoID)
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.GetStatistics: GetVideo %s failed: %v", videoID, err)
		return model.VideoStats{}, mapProviderError(err)
	}
	stats := toVideoStats(v)

	// 3. Cache fill
	if uc.cacheEnabled() {
		if err := uc.cache.SaveStatistics(ctx, stats, uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "video.usecase.GetStatistics: cache write failed for %s: %v", videoID, err)
		}
	}

	return stats, nil
}

func (uc *implUseCase) GetComments(ctx context.Context, videoID string, max int) ([]model.Comment, error) {
	key := uc.apiKey(ctx)
	if key == "" {
		return nil, video.ErrAPIKeyMissing
	}

	items, err := uc.yt.ListComments(ctx, key, videoID, max)
	if err != nil {
		switch {
		case errors.Is(err, youtube.ErrAPINotEnabled):
			return nil, mapProviderError(err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case errors.Is(err, youtube.ErrCommentsDisabled):
			uc.l.Infof(ctx, "video.usecase.GetComments: comments are disabled for %s", videoID)
		default:
			uc.l.Warnf(ctx, "video.usecase.GetComments: could not fetch comments for %s: %v", videoID, err)
		}
		return []model.Comment{}, nil
	}

	return util.MapSlice(items, toComment), nil
}

func (uc *implUseCase) apiKey(ctx context.Context) string {
	if k := youtube.APIKeyFromContext(ctx); k != "" {
		return k
	}
	return uc.cfg.APIKey
}

func (uc *implUseCase) cacheEnabled() bool {
	return uc.cache != nil && uc.cfg.CacheTTL > 0
}
