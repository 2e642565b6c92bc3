package handlers

import (
	"net/http"

	"boletera/backend/internal/domain"
	"boletera/backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. SoldOut maps
// to 409 so a stale client sees "trip full" instead of a server fault.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsSoldOut(err):
		respondError(c, http.StatusConflict, "sold_out", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsUnavailable(err):
		respondError(c, http.StatusServiceUnavailable, "storage_unavailable", "almacenamiento no disponible, intenta de nuevo", nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "ocurrió un error", nil)
	}
}
