package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"insight-srv/internal/analytics"
	analyticsHTTP "insight-srv/internal/analytics/delivery/http"
	analyticsProducer "insight-srv/internal/analytics/delivery/kafka/producer"
	analyticsUsecase "insight-srv/internal/analytics/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	var opts []analyticsUsecase.Option
	if srv.kafkaProducer != nil {
		opts = append(opts, analyticsUsecase.WithPublisher(analyticsProducer.New(srv.l, srv.kafkaProducer)))
	}

	uc := analyticsUsecase.New(
		srv.l,
		srv.videoUC,
		srv.classifierUC,
		srv.metricsUC,
		analytics.Config{MaxComments: srv.maxComments},
		opts...,
	)

	handler := analyticsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
}
