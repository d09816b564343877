package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Classify - Label one comment
// @Summary Classify a comment
// @Description Returns the spam flag, sentiment label and emotion score of a piece of text
// @Tags Comments
// @Accept json
// @Produce json
// @Param body body classifyReq true "Comment text"
// @Success 200 {object} classificationResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/comments/classify [post]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "classifier.delivery.http.Classify: processClassifyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newClassificationResp(h.uc.Classify(req.Text)))
}

// ClassifyBatch - Label many comments at once
// @Summary Classify comments in bulk
// @Description Classifies every text and returns sentiment and spam counts
// @Tags Comments
// @Accept json
// @Produce json
// @Param body body classifyBatchReq true "Comment texts"
// @Success 200 {object} classifyBatchResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/comments/classify/batch [post]
func (h *handler) ClassifyBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyBatchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "classifier.delivery.http.ClassifyBatch: processClassifyBatchRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	out := h.uc.ClassifyBatch(req.Texts)
	h.l.Debugf(ctx, "classifier.delivery.http.ClassifyBatch: total=%d spam=%d", out.Total, out.Spam)
	response.OK(c, h.newClassifyBatchResp(out))
}
