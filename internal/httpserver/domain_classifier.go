package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	classifierHTTP "insight-srv/internal/classifier/delivery/http"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupClassifierDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := classifierHTTP.New(srv.l, srv.classifierUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Classifier domain registered")
}
