package analytics

import (
	"time"

	"insight-srv/internal/engagement"
	"insight-srv/internal/model"
)

// DefaultMaxComments is used when the configuration leaves the comment budget unset.
const DefaultMaxComments = 100

// Config - Analysis limits
type Config struct {
	// MaxComments bounds how many comments are fetched per analysis.
	MaxComments int
}

// AnalyzeInput - Input of AnalyzeVideo
type AnalyzeInput struct {
	// RequestID identifies the analysis; generated when empty.
	RequestID   string
	URL         string
	MaxComments int
}

// Insights - Derived, presentation oriented figures
type Insights struct {
	SentimentLabel  string
	CommunityHealth float64
	PositiveShare   float64
	NegativeShare   float64
	SpamShare       float64
	Duration        string
	Views           string
	Likes           string
	Comments        string
}

// AnalyzeOutput - Output of AnalyzeVideo
type AnalyzeOutput struct {
	ID         string
	Video      model.VideoStats
	Counters   engagement.Counters
	Metrics    engagement.Metrics
	Comments   []model.Comment
	Insights   Insights
	AnalyzedAt time.Time
}
