package usecase

import (
	"insight-srv/internal/engagement"
	"insight-srv/internal/model"
	"insight-srv/pkg/util"
)

func (uc *implUseCase) FromCounters(c engagement.Counters) engagement.Metrics {
	views := float64(c.Views)
	return engagement.Metrics{
		EngagementRate:       util.Ratio(float64(c.Likes)+float64(c.Comments), views) * 100,
		LikesToViewsRatio:    util.Ratio(float64(c.Likes), views) * 100,
		CommentsToViewsRatio: util.Ratio(float64(c.Comments), views) * 100,
	}
}

func (uc *implUseCase) Calculate(c engagement.Counters, comments []model.Comment) engagement.Metrics {
	m := uc.FromCounters(c)

	m.TotalComments = len(comments)
	for _, cm := range comments {
		switch cm.Sentiment {
		case model.SentimentPositive:
			m.PositiveComments++
		case model.SentimentNegative:
			m.NegativeComments++
		default:
			m.NeutralComments++
		}
		if cm.IsSpam {
			m.SpamComments++
		}
	}

	if m.TotalComments > 0 {
		m.AverageSentiment = float64(m.PositiveComments-m.NegativeComments) / float64(m.TotalComments)
	}
	return m
}
