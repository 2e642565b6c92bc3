package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boletera/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func respondStatus(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondDomainError(c, err)

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return rec.Code, body
}

func TestRespondDomainErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ValidationError{Field: "fecha", Msg: "no válida"}, http.StatusBadRequest, "validation_error"},
		{domain.NotFoundError{Resource: "ruta"}, http.StatusNotFound, "not_found"},
		{domain.SoldOutError{RutaID: 1, Fecha: "2025-06-02"}, http.StatusConflict, "sold_out"},
		{domain.ConflictError{Resource: "reserva"}, http.StatusConflict, "conflict"},
		{domain.UnavailableError{}, http.StatusServiceUnavailable, "storage_unavailable"},
		{domain.InternalError{Msg: "boom"}, http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		status, body := respondStatus(t, tc.err)
		if status != tc.status {
			t.Fatalf("%T: expected status %d, got %d", tc.err, tc.status, status)
		}
		if body.Code != tc.code {
			t.Fatalf("%T: expected code %s, got %s", tc.err, tc.code, body.Code)
		}
	}
}

func TestSoldOutNeverLeaksAsServerFault(t *testing.T) {
	status, _ := respondStatus(t, domain.SoldOutError{})
	if status >= 500 {
		t.Fatalf("a full trip is a client-visible conflict, not a fault: %d", status)
	}
}
