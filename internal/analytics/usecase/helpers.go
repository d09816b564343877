package usecase

import (
	"insight-srv/internal/analytics"
	"insight-srv/internal/engagement"
	"insight-srv/internal/model"
	"insight-srv/pkg/util"
)

func (uc *implUseCase) commentBudget(requested int) int {
	if requested <= 0 || requested > uc.cfg.MaxComments {
		return uc.cfg.MaxComments
	}
	return requested
}

func buildInsights(v model.VideoStats, c engagement.Counters, m engagement.Metrics) analytics.Insights {
	return analytics.Insights{
		SentimentLabel:  engagement.SentimentLabel(m.AverageSentiment),
		CommunityHealth: engagement.CommunityHealth(m),
		PositiveShare:   engagement.Share(m.PositiveComments, m.TotalComments),
		NegativeShare:   engagement.Share(m.NegativeComments, m.TotalComments),
		SpamShare:       engagement.Share(m.SpamComments, m.TotalComments),
		Duration:        util.FormatDuration(v.Duration),
		Views:           util.FormatNumber(c.Views),
		Likes:           util.FormatNumber(c.Likes),
		Comments:        util.FormatNumber(c.Comments),
	}
}
