package consumer

import (
	"context"

	"insight-srv/internal/classifier"
	"insight-srv/internal/video"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/redis"
	"insight-srv/pkg/youtube"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l            log.Logger
	requestTopic string
	videoConfig  video.Config
	maxComments  int
	lexicon      classifier.Lexicon

	// Infrastructure clients
	consumerGroup pkgKafka.IConsumer
	kafkaProducer pkgKafka.IProducer
	redisClient   redis.IRedis
	youtubeClient youtube.IYouTube

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger       log.Logger
	RequestTopic string
	VideoConfig  video.Config
	MaxComments  int
	Lexicon      classifier.Lexicon

	// Infrastructure clients. Redis is optional.
	ConsumerGroup pkgKafka.IConsumer
	KafkaProducer pkgKafka.IProducer
	RedisClient   redis.IRedis
	YouTubeClient youtube.IYouTube

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		srv.report(ctx, "Consumer setup failed", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.report(ctx, "Consumer start failed", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.WithoutCancel(ctx), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}

func (srv *ConsumerServer) report(ctx context.Context, title string, err error) {
	if srv.discord == nil {
		return
	}
	if e := srv.discord.SendError(ctx, title, "insight consumer", err); e != nil {
		srv.l.Warnf(ctx, "consumer.report: discord failed: %v", e)
	}
}
