package main

import (
	"context"
	"fmt"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configRedis "insight-srv/config/redis"
	configYouTube "insight-srv/config/youtube"
	"insight-srv/internal/catalog"
	"insight-srv/internal/classifier"
	"insight-srv/internal/httpserver"
	"insight-srv/internal/video"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

// @title       Insight Service API
// @description Comment classification, engagement metrics, video comparison and the AI tool catalog.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey YouTubeKey
// @in header
// @name X-YouTube-Api-Key
// @description Optional YouTube Data API key. Overrides the configured key for the request.
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Load classifier lexicon and the catalog
	lexicon, err := classifier.LexiconFromPath(cfg.Lexicon.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to load lexicon: %v", err)
		return
	}
	cat, err := catalog.DefaultCatalog()
	if err != nil {
		logger.Errorf(ctx, "Failed to load catalog: %v", err)
		return
	}

	// 4. Initialize Discord (optional)
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
			logger.Infof(ctx, "Discord webhook initialized successfully")
		}
	}

	// 5. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 6. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer initialized, topic: %s", cfg.Kafka.Topic)
	}

	// 7. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:       logger,
		Host:         cfg.HTTPServer.Host,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AllowOrigins: cfg.HTTPServer.AllowOrigins,

		// Domain Configuration
		VideoConfig: video.Config{
			APIKey:   cfg.YouTube.APIKey,
			CacheTTL: cfg.Cache.VideoTTL,
		},
		MaxComments: cfg.YouTube.MaxComments,
		Lexicon:     lexicon,
		Catalog:     cat,

		// External clients
		YouTubeClient: configYouTube.New(cfg.YouTube),
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
