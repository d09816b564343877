package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		requestTopic:  cfg.RequestTopic,
		videoConfig:   cfg.VideoConfig,
		maxComments:   cfg.MaxComments,
		lexicon:       cfg.Lexicon,
		consumerGroup: cfg.ConsumerGroup,
		kafkaProducer: cfg.KafkaProducer,
		redisClient:   cfg.RedisClient,
		youtubeClient: cfg.YouTubeClient,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.requestTopic == "" {
		return fmt.Errorf("request topic is required")
	}

	// Infrastructure clients
	if srv.consumerGroup == nil {
		return fmt.Errorf("kafka consumer group is required")
	}
	if srv.kafkaProducer == nil {
		return fmt.Errorf("kafka producer is required")
	}
	if srv.youtubeClient == nil {
		return fmt.Errorf("youtube client is required")
	}

	return nil
}
