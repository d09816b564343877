package model

import "time"

// Comment - A top level comment on a video as returned by the provider.
// IsSpam, Sentiment and EmotionScore are filled in by classification and
// are zero values until then.
type Comment struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"like_count"`
	PublishedAt time.Time `json:"published_at"`

	// Classification
	IsSpam       bool      `json:"is_spam"`
	Sentiment    Sentiment `json:"sentiment"`
	EmotionScore float64   `json:"emotion_score"`
}
