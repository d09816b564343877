package model

import "time"

// VideoStats - Video metadata and counters.
// Counters keep the provider's string representation; parse them with engagement.ParseCount.
type VideoStats struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    string    `json:"view_count"`
	LikeCount    string    `json:"like_count"`
	CommentCount string    `json:"comment_count"`
	Duration     string    `json:"duration"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
}
