package youtube

import (
	"context"

	pkgHttp "insight-srv/pkg/http"

	"golang.org/x/time/rate"
)

// IYouTube is a minimal YouTube Data API v3 client.
// Implementations are safe for concurrent use.
type IYouTube interface {
	// GetVideo returns snippet, statistics and content details of one video.
	GetVideo(ctx context.Context, apiKey, videoID string) (Video, error)
	// ListComments returns up to max top level comments ordered by relevance.
	ListComments(ctx context.Context, apiKey, videoID string, max int) ([]Comment, error)
}

// New creates a new YouTube client. Returns the interface.
func New(cfg Config) IYouTube {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkgHttp.NewClient(pkgHttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   DefaultRetries,
			RetryWait: DefaultRetryWait,
		})
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	return &youtubeImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}
