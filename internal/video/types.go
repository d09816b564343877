package video

import "time"

// Config - Provider settings
type Config struct {
	// APIKey is used when the request context carries no key.
	APIKey string
	// CacheTTL is how long statistics stay cached. Zero disables caching.
	CacheTTL time.Duration
}
