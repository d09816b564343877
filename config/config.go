package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// YouTube Data API - video statistics and comments
	YouTube YouTubeConfig

	// Lexicon - optional override of the built-in word lists
	Lexicon LexiconConfig

	// Redis - video statistics cache (optional)
	Redis RedisConfig
	Cache CacheConfig

	// Kafka - event publishing and analysis requests (optional)
	Kafka KafkaConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host         string
	Port         int
	Mode         string
	AllowOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// YouTubeConfig configures the YouTube Data API client.
// APIKey may be empty; callers can then supply a key per request.
type YouTubeConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	Retries           int
	RetryWait         time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxComments       int
}

// LexiconConfig points at a YAML file replacing the built-in lexicon. Empty means built-in.
type LexiconConfig struct {
	Path string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig controls how long fetched video statistics are kept.
type CacheConfig struct {
	VideoTTL time.Duration
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	Topic        string
	RequestTopic string
	GroupID      string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using the global Viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration from v. Used by the CLI, which binds flags onto its own instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	// Set config file name and paths
	v.SetConfigName("insight-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/insight/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowOrigins = v.GetStringSlice("http_server.allow_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// YouTube
	cfg.YouTube.APIKey = v.GetString("youtube.api_key")
	cfg.YouTube.BaseURL = v.GetString("youtube.base_url")
	cfg.YouTube.Timeout = v.GetDuration("youtube.timeout")
	cfg.YouTube.Retries = v.GetInt("youtube.retries")
	cfg.YouTube.RetryWait = v.GetDuration("youtube.retry_wait")
	cfg.YouTube.RequestsPerSecond = v.GetFloat64("youtube.requests_per_second")
	cfg.YouTube.Burst = v.GetInt("youtube.burst")
	cfg.YouTube.MaxComments = v.GetInt("youtube.max_comments")

	// Lexicon
	cfg.Lexicon.Path = v.GetString("lexicon.path")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Cache.VideoTTL = v.GetDuration("cache.video_ttl")

	// Kafka
	cfg.Kafka.Enabled = v.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Kafka.RequestTopic = v.GetString("kafka.request_topic")
	cfg.Kafka.GroupID = v.GetString("kafka.group_id")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.allow_origins", []string{"*"})

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// 1. YouTube
	v.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.timeout", 15*time.Second)
	v.SetDefault("youtube.retries", 2)
	v.SetDefault("youtube.retry_wait", 500*time.Millisecond)
	v.SetDefault("youtube.requests_per_second", 5.0)
	v.SetDefault("youtube.burst", 10)
	v.SetDefault("youtube.max_comments", 100)

	// 2. Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.video_ttl", 10*time.Minute)

	// 3. Kafka
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "insight.events")
	v.SetDefault("kafka.request_topic", "insight.analysis.requested")
	v.SetDefault("kafka.group_id", "insight-srv")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.YouTube.BaseURL == "" {
		return fmt.Errorf("youtube.base_url is required")
	}
	if cfg.YouTube.MaxComments <= 0 {
		return fmt.Errorf("youtube.max_comments must be greater than 0")
	}
	if cfg.YouTube.RequestsPerSecond <= 0 {
		return fmt.Errorf("youtube.requests_per_second must be greater than 0")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers must have at least one value")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required")
		}
	}

	return nil
}
