package handlers

import (
	"net/http"
	"strings"

	"boletera/backend/internal/domain/models"
	"boletera/backend/internal/http/middleware"
	"boletera/backend/internal/repositories"
	"boletera/backend/internal/services"

	"github.com/gin-gonic/gin"
)

func routeService(c *gin.Context) services.RouteService {
	return services.RouteService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/routes?origen=&destino=&activa=
func ListRoutes(c *gin.Context) {
	filter := repositories.RouteFilter{
		Origen:      c.Query("origen"),
		Destino:     c.Query("destino"),
		SoloActivas: !strings.EqualFold(c.Query("activa"), "false"),
	}
	routes, err := routeService(c).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /api/places
func ListPlaces(c *gin.Context) {
	origins, destinations, err := routeService(c).Places()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"origenes": origins, "destinos": destinations})
}

// GET /api/routes/:id
func GetRoute(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	route, err := routeService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// POST /api/routes
func CreateRoute(c *gin.Context) {
	var rt models.Route
	if !BindJSONOrError(c, &rt) {
		return
	}
	created, err := routeService(c).Create(rt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/routes/:id
func UpdateRoute(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var upd models.RouteUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	updated, err := routeService(c).Update(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/routes/:id — soft delete; historical trips stay intact.
func DeactivateRoute(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := routeService(c).Deactivate(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
