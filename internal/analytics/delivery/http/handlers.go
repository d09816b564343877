package http

import (
	"insight-srv/pkg/log"
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Analyze - Analyze one video
// @Summary Analyze a YouTube video
// @Description Fetches statistics and top comments, classifies the comments and returns engagement metrics and insights
// @Tags Analyses
// @Accept json
// @Produce json
// @Param X-YouTube-Api-Key header string false "YouTube Data API key overriding the configured one"
// @Param body body analyzeReq true "Video URL"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analyses [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// The request id doubles as the analysis id so logs and events line up
	o, err := h.uc.AnalyzeVideo(ctx, req.toInput(log.RequestIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Analyze: usecase AnalyzeVideo failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}
