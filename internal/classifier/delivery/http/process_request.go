package http

import "github.com/gin-gonic/gin"

func (h *handler) processClassifyRequest(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processClassifyBatchRequest(c *gin.Context) (classifyBatchReq, error) {
	var req classifyBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
