package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	tools := r.Group("/api/v1/tools")
	{
		tools.GET("", h.ListTools)
		tools.GET("/categories", h.ToolCategories)
		tools.GET("/popular", h.PopularTools)
		tools.POST("/recommendations", h.RecommendTools)
	}

	courses := r.Group("/api/v1/courses")
	{
		courses.GET("", h.SearchCourses)
		courses.GET("/categories", h.CourseCategories)
		courses.GET("/filters", h.CourseFilters)
		courses.GET("/popular", h.PopularCourses)
		courses.GET("/free", h.FreeCourses)
		courses.GET("/certified", h.CertifiedCourses)
		courses.POST("/recommendations", h.RecommendCourses)
	}
}
