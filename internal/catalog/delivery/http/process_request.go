package http

import "github.com/gin-gonic/gin"

func (h *handler) processListToolsRequest(c *gin.Context) (listToolsReq, error) {
	var req listToolsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}

func (h *handler) processRecommendToolsRequest(c *gin.Context) (recommendToolsReq, error) {
	var req recommendToolsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processSearchCoursesRequest(c *gin.Context) (searchCoursesReq, error) {
	var req searchCoursesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}

func (h *handler) processRecommendCoursesRequest(c *gin.Context) (recommendCoursesReq, error) {
	var req recommendCoursesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
