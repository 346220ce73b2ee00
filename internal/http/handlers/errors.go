package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/domain"
	"travelmitr/internal/http/middleware"
)

// ErrorResponse standardizes error payloads. Message duplicates Error for
// clients that read "message".
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

var kindStatus = map[string]int{
	domain.KindValidation:   http.StatusBadRequest,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindNoRoute:      http.StatusNotFound,
	domain.KindConflict:     http.StatusConflict,
	domain.KindRateLimited:  http.StatusTooManyRequests,
	domain.KindUpstream:     http.StatusBadGateway,
	domain.KindStorage:      http.StatusInternalServerError,
	domain.KindInternal:     http.StatusInternalServerError,
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind string) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Storage and
// internal details are logged, never sent to the client.
func RespondDomainError(c *gin.Context, err error) {
	kind := domain.Kind(err)
	status := StatusFor(kind)
	msg := err.Error()
	if status >= http.StatusInternalServerError && kind != domain.KindUpstream {
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"code", kind,
			"error", err,
		)
		msg = "server error"
	}
	respondError(c, status, kind, msg)
}
