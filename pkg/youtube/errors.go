package youtube

import "errors"

var (
	ErrAPIKeyRequired   = errors.New("youtube: api key is required")
	ErrNotFound         = errors.New("youtube: video not found")
	ErrAPINotEnabled    = errors.New("youtube: data api v3 is not enabled for this project")
	ErrQuotaExceeded    = errors.New("youtube: quota exceeded")
	ErrAccessDenied     = errors.New("youtube: access denied")
	ErrBadRequest       = errors.New("youtube: invalid request")
	ErrCommentsDisabled = errors.New("youtube: comments are disabled")
	ErrUnexpectedStatus = errors.New("youtube: unexpected status code")
)
