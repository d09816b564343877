package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "insight-srv/internal/analytics/delivery/kafka"
	"insight-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// handleAnalysisRequestedMessage runs one queued analysis. Failed analyses are announced
// with analysis.failed; only a failure to announce is returned, leaving the message unmarked.
func (c *consumer) handleAnalysisRequestedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Infof(ctx, "analytics.delivery.kafka.consumer.handleAnalysisRequestedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.AnalysisRequestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "analytics.delivery.kafka.consumer.handleAnalysisRequestedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	// 2. Validate message
	if message.VideoURL == "" {
		c.l.Warnf(ctx, "analytics.delivery.kafka.consumer.handleAnalysisRequestedMessage: Invalid message: missing video_url (skipping)")
		return nil
	}
	if message.RequestID == "" {
		message.RequestID = uuid.NewString()
	}
	ctx = log.WithRequestID(ctx, message.RequestID)

	// 3. Call UseCase
	out, err := c.uc.AnalyzeVideo(ctx, toAnalyzeInput(message))
	if err != nil {
		c.l.Errorf(ctx, "analytics.delivery.kafka.consumer.handleAnalysisRequestedMessage: usecase AnalyzeVideo failed: %v", err)
		if pubErr := c.publisher.PublishFailed(ctx, message.RequestID, message.VideoURL, err); pubErr != nil {
			return fmt.Errorf("publish failure event: %w", pubErr)
		}
		return nil
	}

	c.l.Infof(ctx, "analytics.delivery.kafka.consumer.handleAnalysisRequestedMessage: Successfully analyzed %s: comments=%d",
		out.Video.ID, out.Metrics.TotalComments)
	return nil
}
