package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"boletera/backend/internal/domain"
	"boletera/backend/internal/domain/models"
	"boletera/backend/internal/notify"
	"boletera/backend/internal/repositories"
	"boletera/backend/internal/utils"

	"github.com/google/uuid"
)

// Default lookahead for discovery, matching the search page.
const defaultWindowDays = 30

// BookingService owns the seat-inventory core: availability reads,
// trip materialization and reservation admission.
type BookingService struct {
	RouteRepo       repositories.RouteRepository
	TripRepo        repositories.TripRepository
	ReservationRepo repositories.ReservationRepository
	Notifier        notify.Notifier
	RequestID       string
	Now             func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s BookingService) notifier() notify.Notifier {
	if s.Notifier != nil {
		return s.Notifier
	}
	return notify.LogNotifier{}
}

// AvailableSeats derives remaining seats for (route, fecha) without
// materializing anything: a trip that does not exist yet simply means
// nothing has been sold. Negative drift from legacy data clamps to 0.
func (s BookingService) AvailableSeats(route models.Route, fecha string) (int, error) {
	ts, err := utils.DepartureTimestamp(fecha, route.HoraSalida)
	if err != nil {
		return 0, domain.ValidationError{Field: "fecha", Msg: err.Error()}
	}

	trip, err := s.TripRepo.FindByDeparture(route.ID, ts)
	if err != nil {
		if domain.IsNotFound(err) {
			return route.Capacidad, nil
		}
		return 0, err
	}

	left := route.Capacidad - trip.AsientosOcupados
	if left < 0 {
		left = 0
	}
	return left, nil
}

// AvailableSeatsByRouteID is the handler-facing variant.
func (s BookingService) AvailableSeatsByRouteID(rutaID int64, fecha string) (int, error) {
	route, err := s.RouteRepo.GetByID(rutaID)
	if err != nil {
		return 0, err
	}
	return s.AvailableSeats(route, fecha)
}

// ListAvailableDepartures walks every matching active route through the
// schedule resolver and keeps the dates that still have seats. Dates
// nobody booked cost one indexed lookup each and write nothing.
func (s BookingService) ListAvailableDepartures(origen, destino string, windowDays int) ([]models.Departure, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	routes, err := s.RouteRepo.List(repositories.RouteFilter{
		Origen:      origen,
		Destino:     destino,
		SoloActivas: true,
	})
	if err != nil {
		return nil, err
	}

	out := []models.Departure{}
	for _, route := range routes {
		for _, dd := range models.OperatingDates(route, s.now(), windowDays) {
			fecha := utils.FormatFecha(dd.Fecha)
			seats, err := s.AvailableSeats(route, fecha)
			if err != nil {
				return nil, err
			}
			if seats <= 0 {
				continue
			}
			out = append(out, models.Departure{
				Ruta:                route,
				Fecha:               fecha,
				DiaSemana:           dd.DiaSemana,
				AsientosDisponibles: seats,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fecha != out[j].Fecha {
			return out[i].Fecha < out[j].Fecha
		}
		return out[i].Ruta.HoraSalida < out[j].Ruta.HoraSalida
	})
	return out, nil
}

type ReserveInput struct {
	RutaID         int64  `json:"ruta_id"`
	Fecha          string `json:"fecha"`
	ClienteNombre  string `json:"cliente_nombre"`
	ClienteEmail   string `json:"cliente_email"`
	ParadaAbordaje string `json:"parada_abordaje"`
}

// ReserveResult carries the reservation plus the context needed to
// render a boarding pass.
type ReserveResult struct {
	Reserva models.Reservation `json:"reserva"`
	Viaje   models.Trip        `json:"viaje"`
	Ruta    models.Route       `json:"ruta"`
	Fecha   string             `json:"fecha"`
}

// Reserve admits one passenger onto (ruta, fecha):
//  1. validate input, re-check availability (stale clients happen),
//  2. materialize the trip if this is its first reservation,
//  3. take the seat with a conditional increment (sold out on no-op),
//  4. insert the reservation with fresh boarding + credential codes,
//  5. fire the confirmation mail without letting it affect the result.
func (s BookingService) Reserve(input ReserveInput) (ReserveResult, error) {
	nombre := utils.NormalizeSpace(input.ClienteNombre)
	email := utils.TrimOrEmpty(input.ClienteEmail)

	if input.RutaID <= 0 {
		return ReserveResult{}, domain.ValidationError{Field: "ruta_id", Msg: "id no válido"}
	}
	if nombre == "" {
		return ReserveResult{}, domain.ValidationError{Field: "cliente_nombre", Msg: "nombre requerido"}
	}
	if !utils.LooksLikeEmail(email) {
		return ReserveResult{}, domain.ValidationError{Field: "cliente_email", Msg: "correo no válido"}
	}

	route, err := s.RouteRepo.GetByID(input.RutaID)
	if err != nil {
		return ReserveResult{}, err
	}
	if !route.Activa {
		return ReserveResult{}, domain.NotFoundError{Resource: "ruta"}
	}

	ts, err := utils.DepartureTimestamp(input.Fecha, route.HoraSalida)
	if err != nil {
		return ReserveResult{}, domain.ValidationError{Field: "fecha", Msg: err.Error()}
	}
	fecha := utils.FormatFecha(ts)
	if !route.OperatesOn(models.DayLabel(ts)) {
		return ReserveResult{}, domain.ValidationError{Field: "fecha", Msg: "la ruta no opera ese día"}
	}

	seats, err := s.AvailableSeats(route, fecha)
	if err != nil {
		return ReserveResult{}, err
	}
	if seats <= 0 {
		return ReserveResult{}, domain.SoldOutError{RutaID: route.ID, Fecha: fecha}
	}

	trip, err := s.materializeTrip(route.ID, ts)
	if err != nil {
		return ReserveResult{}, err
	}

	if err := s.TripRepo.TakeSeat(trip.ID, route.Capacidad); err != nil {
		if domain.IsSoldOut(err) {
			return ReserveResult{}, domain.SoldOutError{RutaID: route.ID, Fecha: fecha}
		}
		return ReserveResult{}, err
	}

	parada, hora := s.boardingPoint(route, input.ParadaAbordaje)
	reserva := models.Reservation{
		ViajeID:        trip.ID,
		ClienteNombre:  nombre,
		ClienteEmail:   email,
		ParadaAbordaje: parada,
		HoraAbordaje:   hora,
		CodigoVisual:   utils.NewBoardingCode(),
		FirmaSeguridad: uuid.NewString(),
		Validado:       false,
	}

	inserted, err := s.ReservationRepo.Insert(reserva)
	if err != nil {
		// give the seat back so the counter does not drift upward
		if relErr := s.TripRepo.ReleaseSeat(trip.ID); relErr != nil {
			utils.LogEvent(s.RequestID, "booking", "release_seat_error", relErr.Error())
		}
		return ReserveResult{}, err
	}
	trip.AsientosOcupados++

	s.sendConfirmation(route, fecha, inserted)

	return ReserveResult{
		Reserva: inserted,
		Viaje:   trip,
		Ruta:    route,
		Fecha:   fecha,
	}, nil
}

// materializeTrip returns the existing trip for the exact departure or
// creates it with zero occupancy. A lost creation race against the
// unique (ruta_id, fecha_salida) key resolves by re-reading.
func (s BookingService) materializeTrip(rutaID int64, ts time.Time) (models.Trip, error) {
	trip, err := s.TripRepo.FindByDeparture(rutaID, ts)
	if err == nil {
		return trip, nil
	}
	if !domain.IsNotFound(err) {
		return models.Trip{}, err
	}

	created, createErr := s.TripRepo.Create(rutaID, ts)
	if createErr == nil {
		return created, nil
	}
	if again, err := s.TripRepo.FindByDeparture(rutaID, ts); err == nil {
		return again, nil
	}
	return models.Trip{}, createErr
}

// boardingPoint resolves the requested stop against the route's
// itinerary; unknown or empty requests fall back to the origin.
func (s BookingService) boardingPoint(route models.Route, requested string) (string, string) {
	requested = utils.TrimOrEmpty(requested)
	if requested != "" {
		for _, stop := range route.Paradas {
			if strings.EqualFold(stop.Name, requested) {
				return stop.Name, stop.Time
			}
		}
		if strings.EqualFold(route.Origen, requested) {
			return route.Origen, route.HoraSalida
		}
	}
	return route.Origen, route.HoraSalida
}

func (s BookingService) sendConfirmation(route models.Route, fecha string, res models.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := s.notifier().Send(ctx, notify.Message{
		Template: notify.TemplateCompra,
		ToEmail:  res.ClienteEmail,
		ToName:   res.ClienteNombre,
		Fields: map[string]string{
			"origen":     route.Origen,
			"destino":    route.Destino,
			"fecha":      fecha,
			"hora":       route.HoraSalida,
			"codigo":     res.CodigoVisual,
			"id_reserva": fmt.Sprintf("%d", res.ID),
		},
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "confirmation_email_error", err.Error())
	}
}
