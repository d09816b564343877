package consumer

import (
	"context"
	"fmt"

	"insight-srv/internal/analytics"
	analyticsConsumer "insight-srv/internal/analytics/delivery/kafka/consumer"
	analyticsProducer "insight-srv/internal/analytics/delivery/kafka/producer"
	analyticsUsecase "insight-srv/internal/analytics/usecase"
	"insight-srv/internal/classifier"
	classifierUsecase "insight-srv/internal/classifier/usecase"
	engagementUsecase "insight-srv/internal/engagement/usecase"
	"insight-srv/internal/video/repository"
	videoRedis "insight-srv/internal/video/repository/redis"
	videoUsecase "insight-srv/internal/video/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	analyticsConsumer analyticsConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = videoRedis.New(srv.redisClient, srv.l)
	}
	videoUC := videoUsecase.New(srv.youtubeClient, cacheRepo, srv.l, srv.videoConfig)

	publisher := analyticsProducer.New(srv.l, srv.kafkaProducer)
	analyticsUC := analyticsUsecase.New(
		srv.l,
		videoUC,
		classifierUsecase.New(srv.lexicon, classifier.DefaultConfig()),
		engagementUsecase.New(),
		analytics.Config{MaxComments: srv.maxComments},
		analyticsUsecase.WithPublisher(publisher),
	)

	analyticsCons, err := analyticsConsumer.New(analyticsConsumer.Config{
		Logger:    srv.l,
		Group:     srv.consumerGroup,
		Topic:     srv.requestTopic,
		UseCase:   analyticsUC,
		Publisher: publisher,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "Analytics domain initialized, topic: %s", srv.requestTopic)

	return &domainConsumers{
		analyticsConsumer: analyticsCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.analyticsConsumer.ConsumeAnalysisRequests(ctx); err != nil {
		return fmt.Errorf("failed to start analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analyticsConsumer != nil {
		if err := consumers.analyticsConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analytics consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
