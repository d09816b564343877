package analytics

import "errors"

var (
	ErrInvalidURL      = errors.New("analytics: invalid video url")
	ErrDataUnavailable = errors.New("analytics: video data unavailable")
)
