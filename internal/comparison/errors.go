package comparison

import "errors"

var (
	ErrInvalidURL      = errors.New("comparison: invalid video url")
	ErrDataUnavailable = errors.New("comparison: video data unavailable")
)
