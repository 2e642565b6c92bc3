package repositories

import (
	"database/sql"
	"strings"

	intconfig "boletera/backend/internal/config"
	intdb "boletera/backend/internal/db"
	"boletera/backend/internal/domain"
	"boletera/backend/internal/domain/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reservationColumns = `id, viaje_id, cliente_nombre, cliente_email,
	COALESCE(parada_abordaje,''), COALESCE(hora_abordaje,''),
	codigo_visual, firma_seguridad, validado, created_at`

func scanReservation(row interface{ Scan(...any) error }) (models.Reservation, error) {
	var res models.Reservation
	err := row.Scan(
		&res.ID,
		&res.ViajeID,
		&res.ClienteNombre,
		&res.ClienteEmail,
		&res.ParadaAbordaje,
		&res.HoraAbordaje,
		&res.CodigoVisual,
		&res.FirmaSeguridad,
		&res.Validado,
		&res.CreatedAt,
	)
	return res, err
}

func (r ReservationRepository) Insert(res models.Reservation) (models.Reservation, error) {
	out, err := r.db().Exec(`
		INSERT INTO reservas (viaje_id, cliente_nombre, cliente_email, parada_abordaje, hora_abordaje, codigo_visual, firma_seguridad, validado)
		VALUES (?,?,?,?,?,?,?,?)`,
		res.ViajeID,
		strings.TrimSpace(res.ClienteNombre),
		strings.TrimSpace(res.ClienteEmail),
		intdb.NullIfEmpty(strings.TrimSpace(res.ParadaAbordaje)),
		intdb.NullIfEmpty(strings.TrimSpace(res.HoraAbordaje)),
		res.CodigoVisual,
		res.FirmaSeguridad,
		res.Validado,
	)
	if err != nil {
		return res, domain.UnavailableError{Err: err}
	}
	id, err := out.LastInsertId()
	if err != nil {
		return res, domain.InternalError{Err: err}
	}
	res.ID = id
	return res, nil
}

func (r ReservationRepository) GetByID(id int64) (models.Reservation, error) {
	if id <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "id", Msg: "id no válido"}
	}
	row := r.db().QueryRow(`SELECT `+reservationColumns+` FROM reservas WHERE id=? LIMIT 1`, id)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return models.Reservation{}, domain.NotFoundError{Resource: "reserva"}
	}
	if err != nil {
		return models.Reservation{}, domain.UnavailableError{Err: err}
	}
	return res, nil
}

// GetByToken re-identifies the exact reservation from the credential
// carried by the boarding pass.
func (r ReservationRepository) GetByToken(token string) (models.Reservation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Reservation{}, domain.ValidationError{Field: "firma_seguridad", Msg: "token vacío"}
	}
	row := r.db().QueryRow(`SELECT `+reservationColumns+` FROM reservas WHERE firma_seguridad=? LIMIT 1`, token)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return models.Reservation{}, domain.NotFoundError{Resource: "reserva"}
	}
	if err != nil {
		return models.Reservation{}, domain.UnavailableError{Err: err}
	}
	return res, nil
}

func (r ReservationRepository) ListByTrip(tripID int64) ([]models.Reservation, error) {
	rows, err := r.db().Query(`SELECT `+reservationColumns+` FROM reservas WHERE viaje_id=? ORDER BY id ASC`, tripID)
	if err != nil {
		return nil, domain.UnavailableError{Err: err}
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// MarkValidated flips validado exactly once; a second scan of the same
// credential is a ConflictError so a pass cannot board twice.
func (r ReservationRepository) MarkValidated(token string) (models.Reservation, error) {
	res, err := r.GetByToken(token)
	if err != nil {
		return models.Reservation{}, err
	}
	if res.Validado {
		return res, domain.ConflictError{Resource: "reserva", Msg: "la reserva ya fue validada"}
	}

	out, err := r.db().Exec(`UPDATE reservas SET validado=TRUE WHERE firma_seguridad=? AND validado=FALSE`, strings.TrimSpace(token))
	if err != nil {
		return models.Reservation{}, domain.UnavailableError{Err: err}
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		return res, domain.ConflictError{Resource: "reserva", Msg: "la reserva ya fue validada"}
	}
	res.Validado = true
	return res, nil
}
