package usecase

import (
	"insight-srv/internal/video"
	"insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"
)

// implUseCase - Implementation of video.UseCase
type implUseCase struct {
	yt    youtube.IYouTube
	cache repository.CacheRepository
	l     log.Logger
	cfg   video.Config
}

// New - Factory function. cache may be nil when Redis is disabled.
func New(
	yt youtube.IYouTube,
	cache repository.CacheRepository,
	l log.Logger,
	cfg video.Config,
) video.UseCase {
	return &implUseCase{
		yt:    yt,
		cache: cache,
		l:     l,
		cfg:   cfg,
	}
}
