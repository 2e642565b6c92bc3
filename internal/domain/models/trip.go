package models

import "time"

// Trip mirrors the viajes table: one materialized occurrence of a
// route on a specific departure timestamp. It does not exist until the
// first admitted reservation for that (ruta, fecha) pair.
type Trip struct {
	ID               int64     `json:"id"`
	RutaID           int64     `json:"ruta_id"`
	FechaSalida      time.Time `json:"fecha_salida"`
	AsientosOcupados int       `json:"asientos_ocupados"`
}

// TripWithReservations is the admin view used by the cancellation flow.
type TripWithReservations struct {
	Trip     Trip          `json:"viaje"`
	Ruta     Route         `json:"ruta"`
	Reservas []Reservation `json:"reservas"`
}
