package services

import (
	"time"

	"boletera/backend/internal/domain"
	"boletera/backend/internal/domain/models"
	"boletera/backend/internal/repositories"
	"boletera/backend/internal/utils"
)

// RouteService manages the route templates the inventory core reads.
type RouteService struct {
	RouteRepo repositories.RouteRepository
	TripRepo  repositories.TripRepository
	RequestID string
	Now       func() time.Time
}

func (s RouteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s RouteService) List(filter repositories.RouteFilter) ([]models.Route, error) {
	return s.RouteRepo.List(filter)
}

func (s RouteService) Get(id int64) (models.Route, error) {
	return s.RouteRepo.GetByID(id)
}

func (s RouteService) Places() (origins []string, destinations []string, err error) {
	return s.RouteRepo.Places()
}

func (s RouteService) Create(rt models.Route) (models.Route, error) {
	rt.Nombre = utils.NormalizeSpace(rt.Nombre)
	rt.Origen = utils.NormalizeSpace(rt.Origen)
	rt.Destino = utils.NormalizeSpace(rt.Destino)

	if err := validateRoute(rt); err != nil {
		return models.Route{}, err
	}
	rt.Activa = true
	return s.RouteRepo.Create(rt)
}

func (s RouteService) Update(id int64, upd models.RouteUpdate) (models.Route, error) {
	if upd.Capacidad != nil && *upd.Capacidad < 1 {
		return models.Route{}, domain.ValidationError{Field: "capacidad", Msg: "debe ser al menos 1"}
	}
	if upd.DiasOperativos != nil {
		if err := validateDias(*upd.DiasOperativos); err != nil {
			return models.Route{}, err
		}
	}
	return s.RouteRepo.Update(id, upd)
}

// Deactivate soft-deletes a route, but refuses while passengers still
// hold reservations on its future trips; those trips must be cancelled
// individually first so the passengers get notified.
func (s RouteService) Deactivate(id int64) error {
	if _, err := s.RouteRepo.GetByID(id); err != nil {
		return err
	}

	held, err := s.TripRepo.CountFutureReservations(id, s.now())
	if err != nil {
		return err
	}
	if held > 0 {
		return domain.ConflictError{
			Resource: "ruta",
			Msg:      "hay pasajeros con reservas en viajes futuros; cancele esos viajes primero",
		}
	}
	return s.RouteRepo.SetActiva(id, false)
}

func validateRoute(rt models.Route) error {
	if rt.Nombre == "" {
		return domain.ValidationError{Field: "nombre", Msg: "requerido"}
	}
	if rt.Origen == "" {
		return domain.ValidationError{Field: "origen", Msg: "requerido"}
	}
	if rt.Destino == "" {
		return domain.ValidationError{Field: "destino", Msg: "requerido"}
	}
	if rt.Capacidad < 1 {
		return domain.ValidationError{Field: "capacidad", Msg: "debe ser al menos 1"}
	}
	if len(rt.DiasOperativos) == 0 {
		return domain.ValidationError{Field: "dias_operativos", Msg: "seleccione al menos un día"}
	}
	return validateDias(rt.DiasOperativos)
}

func validateDias(dias []string) error {
	valid := map[string]bool{}
	for _, d := range models.DayLabels {
		valid[d] = true
	}
	for _, d := range dias {
		if !valid[d] {
			return domain.ValidationError{Field: "dias_operativos", Msg: "día desconocido: " + d}
		}
	}
	return nil
}
