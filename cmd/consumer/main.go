package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"insight-srv/config"
	"insight-srv/config/kafka"
	"insight-srv/config/redis"
	configYouTube "insight-srv/config/youtube"
	"insight-srv/internal/classifier"
	"insight-srv/internal/consumer"
	"insight-srv/internal/video"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insight Consumer Service...")

	if !cfg.Kafka.Enabled {
		logger.Error(ctx, "kafka.enabled is false, nothing to consume")
		return
	}

	// Lexicon
	lexicon, err := classifier.LexiconFromPath(cfg.Lexicon.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to load lexicon: %v", err)
		return
	}

	// Kafka Producer (for publishing results)
	kafkaProducer, err := kafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.Disconnect()
	logger.Info(ctx, "Kafka producer initialized")

	// Kafka Consumer Group
	consumerGroup, err := kafka.ConnectConsumer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka consumer group: %v", err)
		return
	}
	defer kafka.DisconnectConsumer()
	logger.Infof(ctx, "Kafka consumer group %s initialized", cfg.Kafka.GroupID)

	// Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer redis.Disconnect()
		logger.Info(ctx, "Redis client initialized")
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:       logger,
		RequestTopic: cfg.Kafka.RequestTopic,
		VideoConfig: video.Config{
			APIKey:   cfg.YouTube.APIKey,
			CacheTTL: cfg.Cache.VideoTTL,
		},
		MaxComments:   cfg.YouTube.MaxComments,
		Lexicon:       lexicon,
		ConsumerGroup: consumerGroup,
		KafkaProducer: kafkaProducer,
		RedisClient:   redisClient,
		YouTubeClient: configYouTube.New(cfg.YouTube),
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
