package http

import (
	"time"

	"insight-srv/internal/analytics"
	"insight-srv/internal/model"
	"insight-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type analyzeReq struct {
	URL         string `json:"url" binding:"required"`
	MaxComments int    `json:"max_comments" binding:"min=0,max=500"`
}

func (r analyzeReq) toInput(requestID string) analytics.AnalyzeInput {
	return analytics.AnalyzeInput{
		RequestID:   requestID,
		URL:         r.URL,
		MaxComments: r.MaxComments,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type videoResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	Thumbnail    string `json:"thumbnail"`
	Views        int64  `json:"views"`
	Likes        int64  `json:"likes"`
	Comments     int64  `json:"comments"`
}

type metricsResp struct {
	EngagementRate       float64 `json:"engagement_rate"`
	LikesToViewsRatio    float64 `json:"likes_to_views_ratio"`
	CommentsToViewsRatio float64 `json:"comments_to_views_ratio"`
	TotalComments        int     `json:"total_comments"`
	PositiveComments     int     `json:"positive_comments"`
	NegativeComments     int     `json:"negative_comments"`
	NeutralComments      int     `json:"neutral_comments"`
	SpamComments         int     `json:"spam_comments"`
	AverageSentiment     float64 `json:"average_sentiment"`
}

type insightsResp struct {
	SentimentLabel  string  `json:"sentiment_label"`
	CommunityHealth float64 `json:"community_health"`
	PositiveShare   float64 `json:"positive_share"`
	NegativeShare   float64 `json:"negative_share"`
	SpamShare       float64 `json:"spam_share"`
	Duration        string  `json:"duration"`
	Views           string  `json:"views_display"`
	Likes           string  `json:"likes_display"`
	Comments        string  `json:"comments_display"`
}

type commentResp struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	Text         string  `json:"text"`
	LikeCount    int64   `json:"like_count"`
	PublishedAt  string  `json:"published_at"`
	IsSpam       bool    `json:"is_spam"`
	Sentiment    string  `json:"sentiment"`
	EmotionScore float64 `json:"emotion_score"`
}

type analyzeResp struct {
	ID         string        `json:"id"`
	Video      videoResp     `json:"video"`
	Metrics    metricsResp   `json:"metrics"`
	Insights   insightsResp  `json:"insights"`
	Comments   []commentResp `json:"comments"`
	AnalyzedAt string        `json:"analyzed_at"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:           c.ID,
		Author:       c.Author,
		Text:         c.Text,
		LikeCount:    c.LikeCount,
		PublishedAt:  formatTime(c.PublishedAt),
		IsSpam:       c.IsSpam,
		Sentiment:    string(c.Sentiment),
		EmotionScore: util.Round2(c.EmotionScore),
	}
}

func (h *handler) newAnalyzeResp(o analytics.AnalyzeOutput) analyzeResp {
	m := o.Metrics
	return analyzeResp{
		ID: o.ID,
		Video: videoResp{
			ID:           o.Video.ID,
			Title:        o.Video.Title,
			Description:  o.Video.Description,
			ChannelTitle: o.Video.ChannelTitle,
			PublishedAt:  formatTime(o.Video.PublishedAt),
			Thumbnail:    o.Video.Thumbnail,
			Views:        o.Counters.Views,
			Likes:        o.Counters.Likes,
			Comments:     o.Counters.Comments,
		},
		Metrics: metricsResp{
			EngagementRate:       util.Round2(m.EngagementRate),
			LikesToViewsRatio:    util.Round2(m.LikesToViewsRatio),
			CommentsToViewsRatio: util.Round2(m.CommentsToViewsRatio),
			TotalComments:        m.TotalComments,
			PositiveComments:     m.PositiveComments,
			NegativeComments:     m.NegativeComments,
			NeutralComments:      m.NeutralComments,
			SpamComments:         m.SpamComments,
			AverageSentiment:     util.Round2(m.AverageSentiment),
		},
		Insights: insightsResp{
			SentimentLabel:  o.Insights.SentimentLabel,
			CommunityHealth: util.Round2(o.Insights.CommunityHealth),
			PositiveShare:   util.Round2(o.Insights.PositiveShare),
			NegativeShare:   util.Round2(o.Insights.NegativeShare),
			SpamShare:       util.Round2(o.Insights.SpamShare),
			Duration:        o.Insights.Duration,
			Views:           o.Insights.Views,
			Likes:           o.Insights.Likes,
			Comments:        o.Insights.Comments,
		},
		Comments:   util.MapSlice(o.Comments, newCommentResp),
		AnalyzedAt: formatTime(o.AnalyzedAt),
	}
}
