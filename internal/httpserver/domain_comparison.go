package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	comparisonHTTP "insight-srv/internal/comparison/delivery/http"
	comparisonProducer "insight-srv/internal/comparison/delivery/kafka/producer"
	comparisonUsecase "insight-srv/internal/comparison/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupComparisonDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	var opts []comparisonUsecase.Option
	if srv.kafkaProducer != nil {
		opts = append(opts, comparisonUsecase.WithPublisher(comparisonProducer.New(srv.l, srv.kafkaProducer)))
	}

	uc := comparisonUsecase.New(srv.l, srv.videoUC, srv.metricsUC, opts...)

	handler := comparisonHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Comparison domain registered")
}
