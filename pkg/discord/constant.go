package discord

import (
	"errors"
	"time"
)

const (
	defaultBaseURL = "https://discord.com/api/webhooks"

	// Discord rejects descriptions longer than 4096 characters.
	maxDescriptionLength = 4000
	maxContentLength     = 1900

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	errUnexpectedCode  = errors.New("discord: unexpected status code")
)

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		BaseURL:         defaultBaseURL,
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "insight-srv",
	}
}
