package response

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"insight-srv/pkg/discord"
	pkgErrors "insight-srv/pkg/errors"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error response.
// HTTPError and validation errors are reported as is. Anything else becomes
// a 500 and is forwarded to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if stdErrors.As(err, &httpErr) {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			report(c.Request.Context(), d, err)
		}
		write(c, httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var valErrs pkgErrors.ValidationErrors
	if stdErrors.As(err, &valErrs) {
		write(c, http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    valErrs,
		})
		return
	}

	var valErr pkgErrors.ValidationError
	if stdErrors.As(err, &valErr) {
		write(c, http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    []pkgErrors.ValidationError{valErr},
		})
		return
	}

	report(c.Request.Context(), d, err)
	write(c, http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// BadRequest writes a 400 with the binding error message.
func BadRequest(c *gin.Context, err error) {
	write(c, http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	write(c, http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// PanicError writes a 500 for a recovered panic and reports it with the stack.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	if d != nil {
		msg := fmt.Sprintf("panic: %v\n%s", rec, debug.Stack())
		_ = d.ReportBug(c.Request.Context(), msg)
	}
	write(c, http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

func write(c *gin.Context, code int, resp Resp) {
	resp.RequestID = log.RequestIDFromContext(c.Request.Context())
	c.JSON(code, resp)
}

func report(ctx context.Context, d discord.IDiscord, err error) {
	if d == nil {
		return
	}
	_ = d.ReportBug(ctx, err.Error())
}
