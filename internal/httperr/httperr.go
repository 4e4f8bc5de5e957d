package httperr

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/zaban-academy/internal/observability"
)

// RequestIDKey is the gin context key holding the per-request id.
const RequestIDKey = "requestID"

var exposeDetail atomic.Bool

// ExposeDetail controls whether internal error strings reach the client.
// Only enabled outside prod.
func ExposeDetail(on bool) {
	exposeDetail.Store(on)
}

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Abort writes the catalog entry for code and stops the handler chain.
func Abort(c *gin.Context, code string) {
	status, msg := Lookup(code)
	c.AbortWithStatusJSON(status, HTTPError{Code: code, Message: msg})
}

// Respond maps a use case error onto the response. Business errors go
// through the catalog; anything else is logged, reported and hidden.
func Respond(c *gin.Context, err error) {
	if code := CodeOf(err); code != "" {
		status, msg := Lookup(code)
		Write(c, status, code, msg)
		return
	}

	if IsUniqueViolation(err) {
		status, msg := Lookup("invalid_request")
		Write(c, status, "invalid_request", msg)
		return
	}

	requestID := c.GetString(RequestIDKey)
	zap.L().Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
		zap.String("request_id", requestID),
	)
	observability.CaptureRequestErr(err, c.Request.Method, c.FullPath(), requestID)

	status, msg := Lookup("internal_error")
	body := HTTPError{Code: "internal_error", Message: msg}
	if exposeDetail.Load() {
		body.Detail = err.Error()
	}
	c.JSON(status, body)
}
