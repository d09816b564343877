package consumer

import (
	"insight-srv/internal/analytics"
	kafkaDelivery "insight-srv/internal/analytics/delivery/kafka"
)

// toAnalyzeInput maps the Kafka message DTO to usecase input.
func toAnalyzeInput(m kafkaDelivery.AnalysisRequestedMessage) analytics.AnalyzeInput {
	return analytics.AnalyzeInput{
		RequestID:   m.RequestID,
		URL:         m.VideoURL,
		MaxComments: m.MaxComments,
	}
}
