package consumer

import (
	"context"
	"fmt"

	"insight-srv/internal/analytics"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Consumer runs queued video analyses
type Consumer interface {
	// ConsumeAnalysisRequests starts consuming in the background until ctx is cancelled.
	ConsumeAnalysisRequests(ctx context.Context) error
	Close() error
}

// Config holds the configuration for the analytics consumer
type Config struct {
	Logger    log.Logger
	Group     pkgKafka.IConsumer
	Topic     string
	UseCase   analytics.UseCase
	Publisher analytics.Publisher
}

type consumer struct {
	l         log.Logger
	group     pkgKafka.IConsumer
	topic     string
	uc        analytics.UseCase
	publisher analytics.Publisher
}

// New creates a new analytics consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Publisher == nil {
		return nil, fmt.Errorf("publisher is required")
	}
	if cfg.Group == nil {
		return nil, ErrConsumerGroupNotFound
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	return &consumer{
		l:         cfg.Logger,
		group:     cfg.Group,
		topic:     cfg.Topic,
		uc:        cfg.UseCase,
		publisher: cfg.Publisher,
	}, nil
}

// Close leaves the consumer group
func (c *consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close analysis consumer group: %w", err)
	}
	return nil
}
