package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListTools - Search or filter AI tools
// @Summary List AI tools
// @Description Searches by q, otherwise filters by category or pricing, otherwise lists every tool
// @Tags Tools
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Category"
// @Param pricing query string false "Free, Freemium or Paid"
// @Success 200 {object} toolsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/tools [get]
func (h *handler) ListTools(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListToolsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.ListTools: processListToolsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	switch {
	case req.Query != "":
		response.OK(c, newToolsResp(h.uc.SearchTools(req.Query)))
	case req.Category != "":
		response.OK(c, newToolsResp(h.uc.ToolsByCategory(req.Category)))
	case req.Pricing != "":
		response.OK(c, newToolsResp(h.uc.ToolsByPricing(req.Pricing)))
	default:
		response.OK(c, newToolsResp(h.uc.SearchTools("")))
	}
}

// ToolCategories - Tool categories
// @Summary List tool categories
// @Tags Tools
// @Produce json
// @Success 200 {object} categoriesResp
// @Router /api/v1/tools/categories [get]
func (h *handler) ToolCategories(c *gin.Context) {
	response.OK(c, categoriesResp{Categories: h.uc.ToolCategories()})
}

// PopularTools - Highest rated tools
// @Summary List popular tools
// @Tags Tools
// @Produce json
// @Success 200 {object} toolsResp
// @Router /api/v1/tools/popular [get]
func (h *handler) PopularTools(c *gin.Context) {
	response.OK(c, newToolsResp(h.uc.PopularTools()))
}

// RecommendTools - Tools for a goal
// @Summary Recommend tools
// @Description Matches domain and goal against the catalog, falling back on the experience level
// @Tags Tools
// @Accept json
// @Produce json
// @Param body body recommendToolsReq true "User goal"
// @Success 200 {object} toolsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/tools/recommendations [post]
func (h *handler) RecommendTools(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendToolsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.RecommendTools: processRecommendToolsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newToolsResp(h.uc.RecommendTools(req.toGoal())))
}

// SearchCourses - Search courses
// @Summary Search courses
// @Tags Courses
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Category or All"
// @Param difficulty query string false "Difficulty or All"
// @Param price query string false "Price or All"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} searchCoursesResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/courses [get]
func (h *handler) SearchCourses(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchCoursesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.SearchCourses: processSearchCoursesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newSearchCoursesResp(h.uc.SearchCourses(req.toInput())))
}

// CourseCategories - Course categories
// @Summary List course categories
// @Tags Courses
// @Produce json
// @Success 200 {object} categoriesResp
// @Router /api/v1/courses/categories [get]
func (h *handler) CourseCategories(c *gin.Context) {
	response.OK(c, categoriesResp{Categories: h.uc.CourseCategories()})
}

// CourseFilters - Values for every course filter
// @Summary List course filters
// @Tags Courses
// @Produce json
// @Success 200 {object} courseFiltersResp
// @Router /api/v1/courses/filters [get]
func (h *handler) CourseFilters(c *gin.Context) {
	response.OK(c, courseFiltersResp{
		Categories:   h.uc.CourseCategories(),
		Difficulties: h.uc.DifficultyLevels(),
		Prices:       h.uc.PriceFilters(),
	})
}

// @Summary List popular courses
// @Tags Courses
// @Produce json
// @Success 200 {object} coursesResp
// @Router /api/v1/courses/popular [get]
func (h *handler) PopularCourses(c *gin.Context) {
	response.OK(c, newCoursesResp(h.uc.PopularCourses()))
}

// @Summary List free courses
// @Tags Courses
// @Produce json
// @Success 200 {object} coursesResp
// @Router /api/v1/courses/free [get]
func (h *handler) FreeCourses(c *gin.Context) {
	response.OK(c, newCoursesResp(h.uc.FreeCourses()))
}

// @Summary List courses with a certificate
// @Tags Courses
// @Produce json
// @Success 200 {object} coursesResp
// @Router /api/v1/courses/certified [get]
func (h *handler) CertifiedCourses(c *gin.Context) {
	response.OK(c, newCoursesResp(h.uc.CertifiedCourses()))
}

// RecommendCourses - Courses for a set of interests
// @Summary Recommend courses
// @Tags Courses
// @Accept json
// @Produce json
// @Param body body recommendCoursesReq true "Interests"
// @Success 200 {object} coursesResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/courses/recommendations [post]
func (h *handler) RecommendCourses(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendCoursesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "catalog.delivery.http.RecommendCourses: processRecommendCoursesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newCoursesResp(h.uc.RecommendCourses(req.Interests)))
}
