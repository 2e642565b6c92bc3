package handlers

import (
	"net/http"
	"sync"

	"boletera/backend/internal/http/middleware"
	"boletera/backend/internal/notify"
	"boletera/backend/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	notifierMu sync.RWMutex
	notifier   notify.Notifier = notify.LogNotifier{}
)

// SetNotifier wires the outbound mail sink used by admission and
// cancellation handlers. Called once at startup.
func SetNotifier(n notify.Notifier) {
	notifierMu.Lock()
	defer notifierMu.Unlock()
	if n != nil {
		notifier = n
	}
}

func currentNotifier() notify.Notifier {
	notifierMu.RLock()
	defer notifierMu.RUnlock()
	return notifier
}

// POST /api/reservations
func CreateReservation(c *gin.Context) {
	var input services.ReserveInput
	if !BindJSONOrError(c, &input) {
		return
	}

	svc := services.BookingService{
		Notifier:  currentNotifier(),
		RequestID: middleware.GetRequestID(c),
	}
	result, err := svc.Reserve(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/reservations/:id
func GetReservation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	res, err := svc.ReservationRepo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/boarding/:token — the scan path: the credential alone
// re-identifies the exact reservation.
func GetReservationByToken(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	res, err := svc.ReservationRepo.GetByToken(c.Param("token"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/boarding/:token/validate
func ValidateReservation(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	res, err := svc.ReservationRepo.MarkValidated(c.Param("token"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
