package kafka

import "time"

// AnalysisRequestedMessage - Kafka message on insight.analysis.requested
type AnalysisRequestedMessage struct {
	RequestID   string `json:"request_id"`
	VideoURL    string `json:"video_url"`
	MaxComments int    `json:"max_comments"`
}

// AnalysisCompletedMessage - Payload of analysis.completed
type AnalysisCompletedMessage struct {
	RequestID        string    `json:"request_id"`
	VideoID          string    `json:"video_id"`
	Title            string    `json:"title"`
	Views            int64     `json:"views"`
	Likes            int64     `json:"likes"`
	Comments         int64     `json:"comments"`
	EngagementRate   float64   `json:"engagement_rate"`
	TotalComments    int       `json:"total_comments"`
	PositiveComments int       `json:"positive_comments"`
	NegativeComments int       `json:"negative_comments"`
	NeutralComments  int       `json:"neutral_comments"`
	SpamComments     int       `json:"spam_comments"`
	AverageSentiment float64   `json:"average_sentiment"`
	SentimentLabel   string    `json:"sentiment_label"`
	CommunityHealth  float64   `json:"community_health"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// AnalysisFailedMessage - Payload of analysis.failed
type AnalysisFailedMessage struct {
	RequestID string    `json:"request_id"`
	VideoURL  string    `json:"video_url"`
	Error     string    `json:"error"`
	FailedAt  time.Time `json:"failed_at"`
}
