package http

import "time"

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = 1 * time.Second

	// DefaultUserAgent is sent unless the caller sets its own User-Agent header.
	DefaultUserAgent = "insight-srv/1.0"

	headerUserAgent = "User-Agent"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
		UserAgent: DefaultUserAgent,
	}
}
