package handlers

import (
	"net/http"
	"strconv"

	"boletera/backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "cuerpo vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload no válido", err)
		return false
	}
	return true
}

// ParamID parses the :id route param as a positive int64.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", nil)
		return 0, false
	}
	return id, true
}
