package comparison

import (
	"math"

	"insight-srv/internal/engagement"
)

// ScoreVideo computes the weighted composite score, at most 100.
func ScoreVideo(views int64, m engagement.Metrics) Score {
	s := Score{
		View:       math.Min(float64(views)/1_000_000*30, ViewCap),
		Engagement: math.Min(m.EngagementRate*10, EngagementCap),
		Like:       math.Min(m.LikesToViewsRatio*5, LikeCap),
		Comment:    math.Min(m.CommentsToViewsRatio*100, CommentCap),
	}
	s.Composite = s.View + s.Engagement + s.Like + s.Comment
	return s
}
