package consumer

import (
	"github.com/IBM/sarama"
)

type analysisRequestedHandler struct {
	consumer *consumer
}

func (h *analysisRequestedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *analysisRequestedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *analysisRequestedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleAnalysisRequestedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(session.Context(), "analytics.delivery.kafka.consumer.ConsumeClaim: Failed to process analysis request: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
