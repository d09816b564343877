package engagement

import "insight-srv/internal/model"

//go:generate mockery --name UseCase
type UseCase interface {
	// FromCounters computes the counter based ratios only; comment buckets stay zero.
	FromCounters(c Counters) Metrics
	// Calculate computes ratios and comment buckets. Comments must already be classified.
	Calculate(c Counters, comments []model.Comment) Metrics
}
