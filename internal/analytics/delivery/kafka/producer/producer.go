package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/analytics"
	kafkaDelivery "insight-srv/internal/analytics/delivery/kafka"
)

// PublishCompleted publishes an analysis.completed event keyed by the request id
func (p *implProducer) PublishCompleted(ctx context.Context, out analytics.AnalyzeOutput) error {
	m := out.Metrics
	msg := kafkaDelivery.AnalysisCompletedMessage{
		RequestID:        out.ID,
		VideoID:          out.Video.ID,
		Title:            out.Video.Title,
		Views:            out.Counters.Views,
		Likes:            out.Counters.Likes,
		Comments:         out.Counters.Comments,
		EngagementRate:   m.EngagementRate,
		TotalComments:    m.TotalComments,
		PositiveComments: m.PositiveComments,
		NegativeComments: m.NegativeComments,
		NeutralComments:  m.NeutralComments,
		SpamComments:     m.SpamComments,
		AverageSentiment: m.AverageSentiment,
		SentimentLabel:   out.Insights.SentimentLabel,
		CommunityHealth:  out.Insights.CommunityHealth,
		AnalyzedAt:       out.AnalyzedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	if err := p.producer.PublishEvent(kafkaDelivery.EventTypeAnalysisCompleted, []byte(out.ID), body); err != nil {
		return fmt.Errorf("failed to publish analysis result: %w", err)
	}

	p.l.Infof(ctx, "Published analysis result %s for video %s", out.ID, out.Video.ID)
	return nil
}

// PublishFailed publishes an analysis.failed event keyed by the request id
func (p *implProducer) PublishFailed(ctx context.Context, requestID, videoURL string, cause error) error {
	msg := kafkaDelivery.AnalysisFailedMessage{
		RequestID: requestID,
		VideoURL:  videoURL,
		FailedAt:  p.clock(),
	}
	if cause != nil {
		msg.Error = cause.Error()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis failure: %w", err)
	}

	if err := p.producer.PublishEvent(kafkaDelivery.EventTypeAnalysisFailed, []byte(requestID), body); err != nil {
		return fmt.Errorf("failed to publish analysis failure: %w", err)
	}

	p.l.Infof(ctx, "Published analysis failure %s", requestID)
	return nil
}
