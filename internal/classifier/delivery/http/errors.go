package http

import pkgErrors "insight-srv/pkg/errors"

var errInvalidBody = pkgErrors.NewHTTPError(
	400, "Invalid request body",
)
