package usecase

import (
	"time"

	"insight-srv/internal/comparison"
	"insight-srv/internal/engagement"
	"insight-srv/internal/model"
)

func (uc *implUseCase) buildItem(v model.VideoStats, now time.Time) comparison.Item {
	counters := engagement.CountersFromStats(v)
	metrics := uc.metricsUC.FromCounters(counters)
	pros, cons := comparison.ProsCons(v, counters, metrics, now)

	return comparison.Item{
		Video:    v,
		Counters: counters,
		Metrics:  metrics,
		Score:    comparison.ScoreVideo(counters.Views, metrics),
		Pros:     pros,
		Cons:     cons,
	}
}
