package repositories

import (
	"database/sql"
	"time"

	intconfig "boletera/backend/internal/config"
	"boletera/backend/internal/domain"
	"boletera/backend/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "id no válido"}
	}
	var t models.Trip
	err := r.db().QueryRow(`
		SELECT id, ruta_id, fecha_salida, asientos_ocupados
		FROM viajes WHERE id=? LIMIT 1`, id).
		Scan(&t.ID, &t.RutaID, &t.FechaSalida, &t.AsientosOcupados)
	if err == sql.ErrNoRows {
		return models.Trip{}, domain.NotFoundError{Resource: "viaje"}
	}
	if err != nil {
		return models.Trip{}, domain.UnavailableError{Err: err}
	}
	t.FechaSalida = t.FechaSalida.UTC()
	return t, nil
}

// FindByDeparture looks up the trip for the composite (ruta, fecha_salida)
// key. No match is a NotFoundError; more than one match is a
// data-integrity fault that is reported, never auto-healed.
func (r TripRepository) FindByDeparture(rutaID int64, fechaSalida time.Time) (models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT id, ruta_id, fecha_salida, asientos_ocupados
		FROM viajes WHERE ruta_id=? AND fecha_salida=?`,
		rutaID, fechaSalida.UTC())
	if err != nil {
		return models.Trip{}, domain.UnavailableError{Err: err}
	}
	defer rows.Close()

	found := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.RutaID, &t.FechaSalida, &t.AsientosOcupados); err != nil {
			return models.Trip{}, domain.InternalError{Err: err}
		}
		t.FechaSalida = t.FechaSalida.UTC()
		found = append(found, t)
	}
	if err := rows.Err(); err != nil {
		return models.Trip{}, domain.UnavailableError{Err: err}
	}

	switch len(found) {
	case 0:
		return models.Trip{}, domain.NotFoundError{Resource: "viaje"}
	case 1:
		return found[0], nil
	default:
		return models.Trip{}, domain.InternalError{Msg: "viajes duplicados para la misma ruta y fecha"}
	}
}

// Create materializes a trip with zero occupancy.
func (r TripRepository) Create(rutaID int64, fechaSalida time.Time) (models.Trip, error) {
	res, err := r.db().Exec(`
		INSERT INTO viajes (ruta_id, fecha_salida, asientos_ocupados)
		VALUES (?,?,0)`, rutaID, fechaSalida.UTC())
	if err != nil {
		return models.Trip{}, domain.UnavailableError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return models.Trip{ID: id, RutaID: rutaID, FechaSalida: fechaSalida.UTC(), AsientosOcupados: 0}, nil
}

// TakeSeat increments occupancy only while a seat remains, in a single
// conditional UPDATE. This replaces the legacy read-then-write counter:
// two racing admissions can no longer both count the same stale value,
// so the trip can never be sold past its capacity.
func (r TripRepository) TakeSeat(tripID int64, capacidad int) error {
	res, err := r.db().Exec(`
		UPDATE viajes SET asientos_ocupados = asientos_ocupados + 1
		WHERE id=? AND asientos_ocupados < ?`, tripID, capacidad)
	if err != nil {
		return domain.UnavailableError{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.SoldOutError{}
	}
	return nil
}

// ReleaseSeat undoes a TakeSeat when the reservation insert that
// followed it failed. Best-effort compensation; never goes below zero.
func (r TripRepository) ReleaseSeat(tripID int64) error {
	_, err := r.db().Exec(`
		UPDATE viajes SET asientos_ocupados = asientos_ocupados - 1
		WHERE id=? AND asientos_ocupados > 0`, tripID)
	if err != nil {
		return domain.UnavailableError{Err: err}
	}
	return nil
}

// ListUpcoming returns trips departing at or after the given instant,
// soonest first.
func (r TripRepository) ListUpcoming(from time.Time) ([]models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT id, ruta_id, fecha_salida, asientos_ocupados
		FROM viajes WHERE fecha_salida >= ?
		ORDER BY fecha_salida ASC, id ASC`, from.UTC())
	if err != nil {
		return nil, domain.UnavailableError{Err: err}
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.RutaID, &t.FechaSalida, &t.AsientosOcupados); err != nil {
			return out, domain.InternalError{Err: err}
		}
		t.FechaSalida = t.FechaSalida.UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountFutureReservations counts reservations held on future trips of a
// route. Used to block deactivating a route under passengers' feet.
func (r TripRepository) CountFutureReservations(rutaID int64, from time.Time) (int, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(res.id)
		FROM reservas res
		JOIN viajes v ON v.id = res.viaje_id
		WHERE v.ruta_id=? AND v.fecha_salida >= ?`, rutaID, from.UTC()).
		Scan(&count)
	if err != nil {
		return 0, domain.UnavailableError{Err: err}
	}
	return count, nil
}

// Delete removes the trip and its reservations as an explicit two-phase
// delete inside one transaction. The schema's ON DELETE CASCADE already
// covers the children, but the explicit sequence keeps the invariant
// even against a schema restored without the constraint.
func (r TripRepository) Delete(tripID int64) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id no válido"}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return domain.UnavailableError{Err: err}
	}

	if _, err := tx.Exec(`DELETE FROM reservas WHERE viaje_id=?`, tripID); err != nil {
		_ = tx.Rollback()
		return domain.UnavailableError{Err: err}
	}

	res, err := tx.Exec(`DELETE FROM viajes WHERE id=?`, tripID)
	if err != nil {
		_ = tx.Rollback()
		return domain.UnavailableError{Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		_ = tx.Rollback()
		return domain.NotFoundError{Resource: "viaje"}
	}

	if err := tx.Commit(); err != nil {
		return domain.UnavailableError{Err: err}
	}
	return nil
}
