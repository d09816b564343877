package engagement

import (
	"strconv"
	"strings"

	"insight-srv/internal/model"
)

// ParseCount coerces a provider counter to a non-negative integer. Missing, malformed and negative values are 0.
func ParseCount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CountersFromStats parses the counters of v.
func CountersFromStats(v model.VideoStats) Counters {
	return Counters{
		Views:    ParseCount(v.ViewCount),
		Likes:    ParseCount(v.LikeCount),
		Comments: ParseCount(v.CommentCount),
	}
}
