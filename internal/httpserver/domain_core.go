package httpserver

import (
	"context"

	"insight-srv/internal/classifier"
	classifierUsecase "insight-srv/internal/classifier/usecase"
	engagementUsecase "insight-srv/internal/engagement/usecase"
	"insight-srv/internal/video/repository"
	videoRedis "insight-srv/internal/video/repository/redis"
	videoUsecase "insight-srv/internal/video/usecase"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) {
	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = videoRedis.New(srv.redisClient, srv.l)
	}
	srv.videoUC = videoUsecase.New(srv.youtubeClient, cacheRepo, srv.l, srv.videoConfig)

	srv.classifierUC = classifierUsecase.New(srv.lexicon, classifier.DefaultConfig())
	srv.metricsUC = engagementUsecase.New()

	srv.l.Infof(ctx, "Core domains (Video, Classifier, Engagement) initialized, cache enabled: %t", cacheRepo != nil)
}
