package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (c RedisConfig) validate() error {
	if c.Host == "" {
		return ErrHostRequired
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
