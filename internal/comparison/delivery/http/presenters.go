package http

import (
	"time"

	"insight-srv/internal/comparison"
	"insight-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type compareReq struct {
	URL1 string `json:"url1" binding:"required"`
	URL2 string `json:"url2" binding:"required"`
}

func (r compareReq) toInput() comparison.CompareInput {
	return comparison.CompareInput{URL1: r.URL1, URL2: r.URL2}
}

// =====================================================
// Response DTOs
// =====================================================

type videoResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ChannelTitle    string `json:"channel_title"`
	PublishedAt     string `json:"published_at"`
	Thumbnail       string `json:"thumbnail"`
	Duration        string `json:"duration"`
	Views           int64  `json:"views"`
	Likes           int64  `json:"likes"`
	Comments        int64  `json:"comments"`
	ViewsDisplay    string `json:"views_display"`
	LikesDisplay    string `json:"likes_display"`
	CommentsDisplay string `json:"comments_display"`
}

type metricsResp struct {
	EngagementRate       float64 `json:"engagement_rate"`
	LikesToViewsRatio    float64 `json:"likes_to_views_ratio"`
	CommentsToViewsRatio float64 `json:"comments_to_views_ratio"`
}

type scoreResp struct {
	View       float64 `json:"view"`
	Engagement float64 `json:"engagement"`
	Like       float64 `json:"like"`
	Comment    float64 `json:"comment"`
	Composite  float64 `json:"composite"`
}

type itemResp struct {
	Video   videoResp   `json:"video"`
	Metrics metricsResp `json:"metrics"`
	Score   scoreResp   `json:"score"`
	Pros    []string    `json:"pros"`
	Cons    []string    `json:"cons"`
}

type verdictResp struct {
	Winner  string `json:"winner"`
	Reason  string `json:"reason"`
	Summary string `json:"summary"`
}

type compareResp struct {
	ID         string      `json:"id"`
	Item1      itemResp    `json:"item1"`
	Item2      itemResp    `json:"item2"`
	Verdict    verdictResp `json:"verdict"`
	ComparedAt string      `json:"compared_at"`
}

func newItemResp(it comparison.Item) itemResp {
	published := ""
	if !it.Video.PublishedAt.IsZero() {
		published = it.Video.PublishedAt.Format(time.RFC3339)
	}
	return itemResp{
		Video: videoResp{
			ID:              it.Video.ID,
			Title:           it.Video.Title,
			ChannelTitle:    it.Video.ChannelTitle,
			PublishedAt:     published,
			Thumbnail:       it.Video.Thumbnail,
			Duration:        util.FormatDuration(it.Video.Duration),
			Views:           it.Counters.Views,
			Likes:           it.Counters.Likes,
			Comments:        it.Counters.Comments,
			ViewsDisplay:    util.FormatNumber(it.Counters.Views),
			LikesDisplay:    util.FormatNumber(it.Counters.Likes),
			CommentsDisplay: util.FormatNumber(it.Counters.Comments),
		},
		Metrics: metricsResp{
			EngagementRate:       util.Round2(it.Metrics.EngagementRate),
			LikesToViewsRatio:    util.Round2(it.Metrics.LikesToViewsRatio),
			CommentsToViewsRatio: util.Round2(it.Metrics.CommentsToViewsRatio),
		},
		Score: scoreResp{
			View:       util.Round2(it.Score.View),
			Engagement: util.Round2(it.Score.Engagement),
			Like:       util.Round2(it.Score.Like),
			Comment:    util.Round2(it.Score.Comment),
			Composite:  util.Round2(it.Score.Composite),
		},
		Pros: it.Pros,
		Cons: it.Cons,
	}
}

func (h *handler) newCompareResp(r comparison.ComparisonResult) compareResp {
	return compareResp{
		ID:    r.ID,
		Item1: newItemResp(r.Item1),
		Item2: newItemResp(r.Item2),
		Verdict: verdictResp{
			Winner:  string(r.Verdict.Winner),
			Reason:  r.Verdict.Reason,
			Summary: r.Verdict.Summary,
		},
		ComparedAt: r.ComparedAt.Format(time.RFC3339),
	}
}
