package video

import (
	"context"

	"insight-srv/internal/model"
)

// UseCase is the boundary to the external video-data provider.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// ResolveVideoID extracts the video id from a watch, short, embed or shorts URL.
	ResolveVideoID(url string) (string, error)
	GetStatistics(ctx context.Context, videoID string) (model.VideoStats, error)
	// GetComments returns up to max top level comments. Failures other than a
	// disabled API degrade to an empty list.
	GetComments(ctx context.Context, videoID string, max int) ([]model.Comment, error)
}
