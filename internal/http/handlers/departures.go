package handlers

import (
	"net/http"
	"strconv"

	"boletera/backend/internal/http/middleware"
	"boletera/backend/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/departures?origen=&destino=&dias=
func ListAvailableDepartures(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "0"))

	departures, err := bookingService(c).ListAvailableDepartures(
		c.Query("origen"), c.Query("destino"), dias)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, departures)
}

// GET /api/routes/:id/availability?fecha=
func GetAvailability(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	fecha := c.Query("fecha")
	if fecha == "" {
		RespondError(c, http.StatusBadRequest, "fecha requerida", nil)
		return
	}

	seats, err := bookingService(c).AvailableSeatsByRouteID(id, fecha)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ruta_id":              id,
		"fecha":                fecha,
		"asientos_disponibles": seats,
	})
}
