package services

import (
	"context"
	"fmt"
	"time"

	"boletera/backend/internal/domain/models"
	"boletera/backend/internal/notify"
	"boletera/backend/internal/repositories"
	"boletera/backend/internal/utils"
)

// TripService covers the operator side: listing materialized trips and
// cancelling one with passenger notification.
type TripService struct {
	TripRepo        repositories.TripRepository
	ReservationRepo repositories.ReservationRepository
	RouteRepo       repositories.RouteRepository
	Notifier        notify.Notifier
	RequestID       string
	Now             func() time.Time
}

func (s TripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s TripService) notifier() notify.Notifier {
	if s.Notifier != nil {
		return s.Notifier
	}
	return notify.LogNotifier{}
}

// Get loads a trip with its route and reservations.
func (s TripService) Get(tripID int64) (models.TripWithReservations, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.TripWithReservations{}, err
	}
	route, err := s.RouteRepo.GetByID(trip.RutaID)
	if err != nil {
		return models.TripWithReservations{}, err
	}
	reservas, err := s.ReservationRepo.ListByTrip(trip.ID)
	if err != nil {
		return models.TripWithReservations{}, err
	}
	return models.TripWithReservations{Trip: trip, Ruta: route, Reservas: reservas}, nil
}

// ListUpcoming returns the materialized trips departing from now on,
// each with its reservations (the cancellation screen's data source).
func (s TripService) ListUpcoming() ([]models.TripWithReservations, error) {
	trips, err := s.TripRepo.ListUpcoming(s.now())
	if err != nil {
		return nil, err
	}

	out := []models.TripWithReservations{}
	for _, trip := range trips {
		route, err := s.RouteRepo.GetByID(trip.RutaID)
		if err != nil {
			return nil, err
		}
		reservas, err := s.ReservationRepo.ListByTrip(trip.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.TripWithReservations{Trip: trip, Ruta: route, Reservas: reservas})
	}
	return out, nil
}

// Cancel removes a trip and everything booked on it. Every passenger
// gets one cancellation mail attempt first; individual failures are
// logged and never stop the loop nor the deletion. Irreversible.
func (s TripService) Cancel(tripID int64) error {
	tw, err := s.Get(tripID)
	if err != nil {
		return err
	}

	fecha := utils.FormatFecha(tw.Trip.FechaSalida)
	failed := 0
	for _, res := range tw.Reservas {
		if err := s.notifyCancellation(tw.Ruta, fecha, res); err != nil {
			failed++
			utils.LogEvent(s.RequestID, "trip", "cancel_email_error",
				fmt.Sprintf("viaje_id=%d reserva_id=%d err=%v", tripID, res.ID, err))
		}
	}
	utils.LogEvent(s.RequestID, "trip", "cancel_notify_done",
		fmt.Sprintf("viaje_id=%d notificados=%d fallidos=%d", tripID, len(tw.Reservas)-failed, failed))

	if err := s.TripRepo.Delete(tripID); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "trip", "cancelled",
		fmt.Sprintf("viaje_id=%d reservas_eliminadas=%d", tripID, len(tw.Reservas)))
	return nil
}

func (s TripService) notifyCancellation(route models.Route, fecha string, res models.Reservation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return s.notifier().Send(ctx, notify.Message{
		Template: notify.TemplateCancel,
		ToEmail:  res.ClienteEmail,
		ToName:   res.ClienteNombre,
		Fields: map[string]string{
			"route_name": route.Origen + " - " + route.Destino,
			"trip_date":  fecha,
			"trip_time":  route.HoraSalida,
			"message":    "Lamentamos informar que su viaje ha sido cancelado por motivos operativos. Contáctenos para un reembolso.",
		},
	})
}
