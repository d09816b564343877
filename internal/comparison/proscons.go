package comparison

import (
	"time"

	"insight-srv/internal/engagement"
	"insight-srv/internal/model"
	"insight-srv/pkg/util"
)

const (
	ProHighViewership   = "High viewership"
	ProStrongEngagement = "Strong engagement rate"
	ProLikeRatio        = "Excellent like-to-view ratio"
	ProActiveComments   = "Active comment section"
	ProRecent           = "Recently published"
	ProFallback         = "Video has basic metrics available"

	ConLimitedReach  = "Limited reach"
	ConLowEngagement = "Low engagement rate"
	ConPoorLikeRatio = "Poor like-to-view ratio"
	ConFewComments   = "Few comments relative to views"
	ConOutdated      = "Content may be outdated"
	ConFallback      = "No significant issues detected"

	recentDays  = 30
	staleMonths = 12
)

// ProsCons lists the strengths and weaknesses of a video. Every check is independent;
// when none fires the list holds a single fallback entry.
func ProsCons(v model.VideoStats, c engagement.Counters, m engagement.Metrics, now time.Time) (pros, cons []string) {
	published := !v.PublishedAt.IsZero()

	if c.Views > 1_000_000 {
		pros = append(pros, ProHighViewership)
	}
	if m.EngagementRate > 2 {
		pros = append(pros, ProStrongEngagement)
	}
	if m.LikesToViewsRatio > 2 {
		pros = append(pros, ProLikeRatio)
	}
	if m.CommentsToViewsRatio > 0.1 {
		pros = append(pros, ProActiveComments)
	}
	if published && util.DaysBetween(v.PublishedAt, now) <= recentDays {
		pros = append(pros, ProRecent)
	}
	if len(pros) == 0 {
		pros = []string{ProFallback}
	}

	if c.Views < 10_000 {
		cons = append(cons, ConLimitedReach)
	}
	if m.EngagementRate < 1 {
		cons = append(cons, ConLowEngagement)
	}
	if m.LikesToViewsRatio < 0.1 {
		cons = append(cons, ConPoorLikeRatio)
	}
	if m.CommentsToViewsRatio < 0.01 {
		cons = append(cons, ConFewComments)
	}
	if published && v.PublishedAt.Before(util.AddMonths(now, -staleMonths)) {
		cons = append(cons, ConOutdated)
	}
	if len(cons) == 0 {
		cons = []string{ConFallback}
	}

	return pros, cons
}
