package http

import (
	"net/http"
	"time"
)

// ClientConfig configures the retrying client. Zero Timeout and UserAgent take the defaults;
// Retries is the number of extra attempts after the first.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
