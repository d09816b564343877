package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "insight-srv/internal/catalog/delivery/http"
	catalogUsecase "insight-srv/internal/catalog/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupCatalogDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := catalogUsecase.New(srv.l, srv.catalog)

	handler := catalogHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Catalog domain registered: %d tools, %d courses", len(srv.catalog.Tools), len(srv.catalog.Courses))
}
