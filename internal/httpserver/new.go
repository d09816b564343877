package httpserver

import (
	"errors"

	"insight-srv/internal/catalog"
	"insight-srv/internal/classifier"
	"insight-srv/internal/engagement"
	"insight-srv/internal/video"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
	"insight-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin          *gin.Engine
	l            log.Logger
	host         string
	port         int
	mode         string
	environment  string
	allowOrigins []string

	// Domain Configuration
	videoConfig video.Config
	maxComments int
	lexicon     classifier.Lexicon
	catalog     catalog.Catalog

	// External clients
	youtubeClient youtube.IYouTube
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases, set up by setupCoreDomains
	videoUC      video.UseCase
	classifierUC classifier.UseCase
	metricsUC    engagement.UseCase
}

type Config struct {
	// Server Configuration
	Logger       log.Logger
	Host         string
	Port         int
	Mode         string
	Environment  string
	AllowOrigins []string

	// Domain Configuration
	VideoConfig video.Config
	MaxComments int
	Lexicon     classifier.Lexicon
	Catalog     catalog.Catalog

	// External clients. Redis and Kafka are optional.
	YouTubeClient youtube.IYouTube
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:            logger,
		gin:          gin.New(),
		host:         cfg.Host,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		allowOrigins: cfg.AllowOrigins,

		// Domain Configuration
		videoConfig: cfg.VideoConfig,
		maxComments: cfg.MaxComments,
		lexicon:     cfg.Lexicon,
		catalog:     cfg.Catalog,

		// External clients
		youtubeClient: cfg.YouTubeClient,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Domain Configuration
	if len(srv.catalog.Tools) == 0 || len(srv.catalog.Courses) == 0 {
		return errors.New("catalog is required")
	}

	// External clients
	if srv.youtubeClient == nil {
		return errors.New("youtubeClient is required")
	}

	return nil
}
