package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/comparison"
	kafkaDelivery "insight-srv/internal/comparison/delivery/kafka"
)

// PublishCompleted publishes a comparison.completed event keyed by the comparison id
func (p *implProducer) PublishCompleted(ctx context.Context, result comparison.ComparisonResult) error {
	msg := kafkaDelivery.ComparisonCompletedMessage{
		ComparisonID: result.ID,
		Video1ID:     result.Item1.Video.ID,
		Video2ID:     result.Item2.Video.ID,
		Score1:       result.Item1.Score.Composite,
		Score2:       result.Item2.Score.Composite,
		Winner:       string(result.Verdict.Winner),
		Reason:       result.Verdict.Reason,
		ComparedAt:   result.ComparedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison event: %w", err)
	}

	if err := p.producer.PublishEvent(kafkaDelivery.EventTypeComparisonCompleted, []byte(result.ID), body); err != nil {
		return fmt.Errorf("failed to publish comparison event: %w", err)
	}

	p.l.Debugf(ctx, "comparison.delivery.kafka.producer.PublishCompleted: published %s", result.ID)
	return nil
}
