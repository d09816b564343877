package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/comments")
	{
		api.POST("/classify", h.Classify)
		api.POST("/classify/batch", h.ClassifyBatch)
	}
}
