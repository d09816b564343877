package httpserver

import (
	"context"

	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.discord, srv.allowOrigins)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	srv.setupCoreDomains(ctx)

	r := srv.gin.Group("")
	srv.setupClassifierDomain(ctx, r, mw)
	srv.setupComparisonDomain(ctx, r, mw)
	srv.setupAnalyticsDomain(ctx, r, mw)
	srv.setupCatalogDomain(ctx, r, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	srv.l.Infof(context.Background(), "CORS mode: %s (allowed origins: %v)", srv.environment, srv.allowOrigins)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
