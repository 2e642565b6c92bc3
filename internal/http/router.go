package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "boletera/backend/internal/config"
	h "boletera/backend/internal/http/handlers"
	"boletera/backend/internal/http/middleware"
	"boletera/backend/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	h.SetNotifier(notify.NewEmailJSNotifier(env))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Routes (templates)
		routes := api.Group("/routes")
		routes.GET("", h.ListRoutes)
		routes.POST("", h.CreateRoute)
		routes.GET("/:id", h.GetRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeactivateRoute)
		routes.GET("/:id/availability", h.GetAvailability)

		// Discovery
		api.GET("/places", h.ListPlaces)
		api.GET("/departures", h.ListAvailableDepartures)

		// Reservations
		reservations := api.Group("/reservations")
		reservations.POST("", h.CreateReservation)
		reservations.GET("/:id", h.GetReservation)
		reservations.GET("/:id/boarding-pass", h.GetBoardingPassPDF)

		// Boarding credential (scan path)
		boarding := api.Group("/boarding")
		boarding.GET("/:token", h.GetReservationByToken)
		boarding.POST("/:token/validate", h.ValidateReservation)

		// Trips (materialized departures)
		trips := api.Group("/trips")
		trips.GET("", h.ListTrips)
		trips.GET("/:id", h.GetTrip)
		trips.GET("/:id/manifest", h.GetTripManifestPDF)
		trips.DELETE("/:id", h.CancelTrip)
	}

	return r
}
