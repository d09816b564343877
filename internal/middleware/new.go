package middleware

import (
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"
)

// HeaderYouTubeAPIKey carries a caller supplied YouTube Data API key.
const HeaderYouTubeAPIKey = "X-YouTube-Api-Key"

// HeaderRequestID is read from and echoed to the client.
const HeaderRequestID = "X-Request-ID"

// Middleware holds what the gin middlewares need. The zero value works:
// logs are discarded, nothing is reported and every origin is allowed.
type Middleware struct {
	l            log.Logger
	discord      discord.IDiscord
	allowOrigins []string
}

func New(l log.Logger, discord discord.IDiscord, allowOrigins []string) Middleware {
	return Middleware{
		l:            l,
		discord:      discord,
		allowOrigins: allowOrigins,
	}
}

func (m Middleware) logger() log.Logger {
	if m.l == nil {
		return log.NewNop()
	}
	return m.l
}
