package youtube

import "time"

const (
	// DefaultBaseURL is the YouTube Data API v3 root.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries on 5xx.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultRequestsPerSecond keeps bursts of comparisons inside the daily quota.
	DefaultRequestsPerSecond = 5
	// DefaultBurst is the limiter bucket size.
	DefaultBurst = 10

	// maxPageSize is the largest maxResults commentThreads accepts.
	maxPageSize = 100
)

const (
	headerAPIKey = "X-Goog-Api-Key"

	PathVideos         = "/videos"
	PathCommentThreads = "/commentThreads"
)

// Provider messages and reasons used to classify 403 responses.
const (
	msgAPINotEnabled       = "has not been used"
	reasonQuotaExceeded    = "quotaExceeded"
	reasonCommentsDisabled = "commentsDisabled"
	reasonNotConfigured    = "accessNotConfigured"
)
