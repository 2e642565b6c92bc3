package models

import "time"

// Reservation mirrors the reservas table. CodigoVisual is the short
// human-displayed boarding code; FirmaSeguridad is the high-entropy
// credential carried by the scannable boarding pass. The two are
// intentionally separate and must never be conflated.
type Reservation struct {
	ID             int64     `json:"id"`
	ViajeID        int64     `json:"viaje_id"`
	ClienteNombre  string    `json:"cliente_nombre"`
	ClienteEmail   string    `json:"cliente_email"`
	ParadaAbordaje string    `json:"parada_abordaje"`
	HoraAbordaje   string    `json:"hora_abordaje"`
	CodigoVisual   string    `json:"codigo_visual"`
	FirmaSeguridad string    `json:"firma_seguridad"`
	Validado       bool      `json:"validado"`
	CreatedAt      time.Time `json:"created_at"`
}

// Passenger carries the booking form input.
type Passenger struct {
	NombreCompleto string `json:"cliente_nombre"`
	Email          string `json:"cliente_email"`
}

// Departure is one bookable (route, date) pair produced by discovery.
type Departure struct {
	Ruta                Route  `json:"ruta"`
	Fecha               string `json:"fecha"`
	DiaSemana           string `json:"dia_semana"`
	AsientosDisponibles int    `json:"asientos_disponibles"`
}
