package http

import pkgErrors "insight-srv/pkg/errors"

var (
	errInvalidQuery = pkgErrors.NewHTTPError(400, "Invalid query parameters")
	errInvalidBody  = pkgErrors.NewHTTPError(400, "Invalid request body")
)
