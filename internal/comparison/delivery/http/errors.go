package http

import (
	"errors"

	"insight-srv/internal/comparison"
	"insight-srv/internal/video"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errInvalidBody     = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidURL      = pkgErrors.NewHTTPError(400, "Invalid YouTube URL. Please provide a valid YouTube video URL")
	errVideoNotFound   = pkgErrors.NewHTTPError(404, "Video not found or may be private")
	errQuotaExceeded   = pkgErrors.NewHTTPError(429, "YouTube API quota exceeded. Please try again later")
	errAccessDenied    = pkgErrors.NewHTTPError(403, "Access denied. Please check your YouTube API key")
	errAPINotEnabled   = pkgErrors.NewHTTPError(403, "YouTube Data API v3 is not enabled for this API key")
	errAPIKeyMissing   = pkgErrors.NewHTTPError(401, "YouTube API key is not configured")
	errInvalidRequest  = pkgErrors.NewHTTPError(400, "Invalid request to YouTube API")
	errDataUnavailable = pkgErrors.NewHTTPError(502, "Could not fetch video statistics")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, comparison.ErrInvalidURL):
		return errInvalidURL
	case errors.Is(err, video.ErrVideoNotFound):
		return errVideoNotFound
	case errors.Is(err, video.ErrQuotaExceeded):
		return errQuotaExceeded
	case errors.Is(err, video.ErrAPINotEnabled):
		return errAPINotEnabled
	case errors.Is(err, video.ErrAccessDenied):
		return errAccessDenied
	case errors.Is(err, video.ErrAPIKeyMissing):
		return errAPIKeyMissing
	case errors.Is(err, video.ErrInvalidRequest):
		return errInvalidRequest
	case errors.Is(err, comparison.ErrDataUnavailable):
		return errDataUnavailable
	default:
		panic(err)
	}
}
