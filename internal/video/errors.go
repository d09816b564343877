package video

import "errors"

// Domain errors
var (
	// ErrInvalidURL - URL does not match any known video URL shape
	ErrInvalidURL = errors.New("video: invalid video url")

	// ErrAPIKeyMissing - Neither the request nor the config carries an API key
	ErrAPIKeyMissing = errors.New("video: youtube api key not found")

	// ErrVideoNotFound - Provider has no video with this id
	ErrVideoNotFound = errors.New("video: video not found")

	// ErrAccessDenied - API key lacks permission
	ErrAccessDenied = errors.New("video: access denied, check api key permissions")

	// ErrQuotaExceeded - Provider quota exhausted
	ErrQuotaExceeded = errors.New("video: youtube api quota exceeded")

	// ErrAPINotEnabled - YouTube Data API v3 is not enabled for the key's project
	ErrAPINotEnabled = errors.New("video: youtube data api v3 is not enabled")

	// ErrInvalidRequest - Provider rejected the request
	ErrInvalidRequest = errors.New("video: invalid request, check the video url")

	// ErrProviderFailed - Any other provider failure
	ErrProviderFailed = errors.New("video: provider request failed")
)
