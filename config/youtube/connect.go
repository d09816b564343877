package youtube

import (
	"insight-srv/config"
	pkgHttp "insight-srv/pkg/http"
	"insight-srv/pkg/youtube"
)

// New builds the YouTube Data API client from configuration.
// The API key is not part of the client; it travels with each request.
func New(cfg config.YouTubeConfig) youtube.IYouTube {
	httpCfg := pkgHttp.DefaultConfig()
	if cfg.Timeout > 0 {
		httpCfg.Timeout = cfg.Timeout
	}
	if cfg.Retries >= 0 {
		httpCfg.Retries = cfg.Retries
	}
	if cfg.RetryWait > 0 {
		httpCfg.RetryWait = cfg.RetryWait
	}

	return youtube.New(youtube.Config{
		BaseURL:           cfg.BaseURL,
		HTTPClient:        pkgHttp.NewClient(httpCfg),
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
}
