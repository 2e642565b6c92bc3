package handlers

import (
	"net/http"

	"boletera/backend/internal/http/middleware"
	"boletera/backend/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Notifier:  currentNotifier(),
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/trips — upcoming materialized trips with their reservations.
func ListTrips(c *gin.Context) {
	trips, err := tripService(c).ListUpcoming()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	trip, err := tripService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/trips/:id — cancels the trip, notifying every passenger
// best-effort first. The UI must confirm with the operator before
// calling this; there is no undo.
func CancelTrip(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := tripService(c).Cancel(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "viaje cancelado y pasajeros notificados"})
}
