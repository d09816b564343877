package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Compare - Compare two videos
// @Summary Compare two YouTube videos
// @Description Scores both videos on views and engagement and returns a verdict with pros and cons
// @Tags Comparisons
// @Accept json
// @Produce json
// @Param X-YouTube-Api-Key header string false "YouTube Data API key overriding the configured one"
// @Param body body compareReq true "Video URLs"
// @Success 200 {object} compareResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/comparisons [post]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Bind
	req, err := h.processCompareRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "comparison.delivery.http.Compare: processCompareRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Compare
	o, err := h.uc.Compare(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comparison.delivery.http.Compare: usecase Compare failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Respond
	response.OK(c, h.newCompareResp(o))
}
