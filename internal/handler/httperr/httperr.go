package httperr

import (
	"log/slog"
	"net/http"

	"table-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

const stackLines = 12

// Abort classifies err by its kind mark and responds with the matching
// status. The error's own message and details are exposed only for client
// errors; everything else is answered with a generic message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		msg := "Internal error"
		if status == http.StatusServiceUnavailable {
			msg = "Service temporarily unavailable"
		}
		slog.Error("request failed",
			"path", c.FullPath(),
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines))
		AbortWithError(c, status, err, msg, nil)
		return
	}

	var detail any
	if details := errs.Details(err); len(details) > 0 {
		detail = details
	}
	AbortWithError(c, status, err, rootMessage(err), detail)
}

func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindMalformedInput:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindUnauthorized:
		return http.StatusForbidden
	case errs.KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case errs.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func rootMessage(err error) string {
	return errs.UnwrapAll(err).Error()
}
