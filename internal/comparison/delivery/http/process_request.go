package http

import "github.com/gin-gonic/gin"

func (h *handler) processCompareRequest(c *gin.Context) (compareReq, error) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
