package usecase

import (
	"errors"
	"fmt"

	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/pkg/youtube"
)

func mapProviderError(err error) error {
	switch {
	case errors.Is(err, youtube.ErrNotFound):
		return fmt.Errorf("%w: %w", video.ErrVideoNotFound, err)
	case errors.Is(err, youtube.ErrAPINotEnabled):
		return fmt.Errorf("%w: %w", video.ErrAPINotEnabled, err)
	case errors.Is(err, youtube.ErrQuotaExceeded):
		return fmt.Errorf("%w: %w", video.ErrQuotaExceeded, err)
	case errors.Is(err, youtube.ErrAccessDenied):
		return fmt.Errorf("%w: %w", video.ErrAccessDenied, err)
	case errors.Is(err, youtube.ErrBadRequest):
		return fmt.Errorf("%w: %w", video.ErrInvalidRequest, err)
	case errors.Is(err, youtube.ErrAPIKeyRequired):
		return fmt.Errorf("%w: %w", video.ErrAPIKeyMissing, err)
	default:
		return fmt.Errorf("%w: %w", video.ErrProviderFailed, err)
	}
}

func toVideoStats(v youtube.Video) model.VideoStats {
	return model.VideoStats{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		ChannelTitle: v.ChannelTitle,
		PublishedAt:  v.PublishedAt,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		CommentCount: v.CommentCount,
		Duration:     v.Duration,
		Thumbnail:    v.Thumbnail,
	}
}

func toComment(c youtube.Comment) model.Comment {
	return model.Comment{
		ID:          c.ID,
		Author:      c.Author,
		Text:        c.Text,
		LikeCount:   c.LikeCount,
		PublishedAt: c.PublishedAt,
	}
}
