package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "https://www.googleapis.com/youtube/v3", cfg.YouTube.BaseURL)
	assert.Equal(t, 100, cfg.YouTube.MaxComments)
	assert.Equal(t, 10*time.Minute, cfg.Cache.VideoTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "insight.events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.YouTube.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := `
http_server:
  port: 9090
youtube:
  api_key: abc
  max_comments: 25
  timeout: 3s
redis:
  enabled: true
  host: cache
kafka:
  enabled: true
  brokers: ["k1:9092", "k2:9092"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "insight-config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "abc", cfg.YouTube.APIKey)
	assert.Equal(t, 25, cfg.YouTube.MaxComments)
	assert.Equal(t, 3*time.Second, cfg.YouTube.Timeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			YouTube:    YouTubeConfig{BaseURL: "http://x", MaxComments: 10, RequestsPerSecond: 1},
		}
	}

	assert.NoError(t, validate(base()))

	c := base()
	c.HTTPServer.Port = 0
	assert.Error(t, validate(c))

	c = base()
	c.YouTube.MaxComments = 0
	assert.Error(t, validate(c))

	c = base()
	c.Redis = RedisConfig{Enabled: true}
	assert.Error(t, validate(c))

	c = base()
	c.Kafka = KafkaConfig{Enabled: true, Brokers: []string{"b"}}
	assert.Error(t, validate(c))
}
