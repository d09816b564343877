package http

import (
	"insight-srv/internal/classifier"
	"insight-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type classifyReq struct {
	Text string `json:"text"`
}

type classifyBatchReq struct {
	Texts []string `json:"texts" binding:"required,max=500"`
}

// =====================================================
// Response DTOs
// =====================================================

type classificationResp struct {
	IsSpam       bool    `json:"is_spam"`
	Sentiment    string  `json:"sentiment"`
	EmotionScore float64 `json:"emotion_score"`
}

type classifyBatchResp struct {
	Results  []classificationResp `json:"results"`
	Total    int                  `json:"total"`
	Positive int                  `json:"positive"`
	Negative int                  `json:"negative"`
	Neutral  int                  `json:"neutral"`
	Spam     int                  `json:"spam"`
}

func newClassificationResp(c classifier.Classification) classificationResp {
	return classificationResp{
		IsSpam:       c.IsSpam,
		Sentiment:    string(c.Sentiment),
		EmotionScore: util.Round2(c.EmotionScore),
	}
}

func (h *handler) newClassifyBatchResp(out classifier.BatchOutput) classifyBatchResp {
	return classifyBatchResp{
		Results:  util.MapSlice(out.Results, newClassificationResp),
		Total:    out.Total,
		Positive: out.Positive,
		Negative: out.Negative,
		Neutral:  out.Neutral,
		Spam:     out.Spam,
	}
}
