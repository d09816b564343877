package engagement

// Counters - Parsed video counters
type Counters struct {
	Views    int64
	Likes    int64
	Comments int64
}

// Metrics - Aggregated engagement of one video.
// Rates are percentages kept at full precision; round only for display.
type Metrics struct {
	EngagementRate       float64
	LikesToViewsRatio    float64
	CommentsToViewsRatio float64

	TotalComments    int
	PositiveComments int
	NegativeComments int
	NeutralComments  int
	SpamComments     int
	AverageSentiment float64
}

// Sentiment labels shown next to the average sentiment
const (
	LabelVeryPositive = "Very Positive"
	LabelPositive     = "Positive"
	LabelNeutral      = "Neutral"
	LabelNegative     = "Negative"
	LabelVeryNegative = "Very Negative"
)
