package comparison

import (
	"time"

	"insight-srv/internal/engagement"
	"insight-srv/internal/model"
)

// Winner - Outcome of a comparison
type Winner string

const (
	WinnerItem1 Winner = "item1"
	WinnerItem2 Winner = "item2"
	WinnerTie   Winner = "tie"
)

// Score weights and caps
const (
	ViewCap       = 30.0
	EngagementCap = 40.0
	LikeCap       = 20.0
	CommentCap    = 10.0

	// TieThreshold is the composite difference below which two videos tie.
	TieThreshold = 10.0
)

// CompareInput - Input of Compare
type CompareInput struct {
	URL1 string
	URL2 string
}

// Score - Composite score and its capped components
type Score struct {
	View       float64
	Engagement float64
	Like       float64
	Comment    float64
	Composite  float64
}

// Item - One side of a comparison
type Item struct {
	Video    model.VideoStats
	Counters engagement.Counters
	Metrics  engagement.Metrics
	Score    Score
	Pros     []string
	Cons     []string
}

// Verdict - Which item won and why
type Verdict struct {
	Winner  Winner
	Reason  string
	Summary string
}

// ComparisonResult - Output of Compare
type ComparisonResult struct {
	ID         string
	Item1      Item
	Item2      Item
	Verdict    Verdict
	ComparedAt time.Time
}
