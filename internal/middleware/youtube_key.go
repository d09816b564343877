package middleware

import (
	"strings"

	"insight-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
)

// YouTubeKey puts the caller's YouTube API key, if any, into the request context.
// It takes precedence over the configured key.
func (m Middleware) YouTubeKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := strings.TrimSpace(c.GetHeader(HeaderYouTubeAPIKey)); key != "" {
			c.Request = c.Request.WithContext(youtube.WithAPIKey(c.Request.Context(), key))
		}
		c.Next()
	}
}
