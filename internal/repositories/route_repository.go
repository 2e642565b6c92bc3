package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "boletera/backend/internal/config"
	"boletera/backend/internal/domain"
	"boletera/backend/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const routeColumns = `id, nombre, origen, destino, precio_base, capacidad,
	COALESCE(hora_salida,'00:00'), COALESCE(hora_llegada,'00:00'),
	paradas, dias_operativos, activa`

func scanRoute(row interface{ Scan(...any) error }) (models.Route, error) {
	var rt models.Route
	var paradas, dias sql.NullString
	if err := row.Scan(
		&rt.ID,
		&rt.Nombre,
		&rt.Origen,
		&rt.Destino,
		&rt.PrecioBase,
		&rt.Capacidad,
		&rt.HoraSalida,
		&rt.HoraLlegada,
		&paradas,
		&dias,
		&rt.Activa,
	); err != nil {
		return rt, err
	}

	rt.Paradas = []models.Stop{}
	if paradas.Valid && strings.TrimSpace(paradas.String) != "" {
		if err := json.Unmarshal([]byte(paradas.String), &rt.Paradas); err != nil {
			return rt, domain.InternalError{Msg: "paradas corruptas en ruta", Err: err}
		}
	}
	rt.DiasOperativos = []string{}
	if dias.Valid && strings.TrimSpace(dias.String) != "" {
		if err := json.Unmarshal([]byte(dias.String), &rt.DiasOperativos); err != nil {
			return rt, domain.InternalError{Msg: "dias_operativos corruptos en ruta", Err: err}
		}
	}
	return rt, nil
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	if id <= 0 {
		return models.Route{}, domain.ValidationError{Field: "id", Msg: "id no válido"}
	}
	row := r.db().QueryRow(`SELECT `+routeColumns+` FROM rutas WHERE id=? LIMIT 1`, id)
	rt, err := scanRoute(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Route{}, domain.NotFoundError{Resource: "ruta"}
		}
		if domain.IsInternal(err) {
			return models.Route{}, err
		}
		return models.Route{}, domain.UnavailableError{Err: err}
	}
	return rt, nil
}

// RouteFilter narrows List; empty fields match everything.
type RouteFilter struct {
	Origen      string
	Destino     string
	SoloActivas bool
}

func (r RouteRepository) List(filter RouteFilter) ([]models.Route, error) {
	where := []string{"1=1"}
	args := []any{}

	if filter.SoloActivas {
		where = append(where, "activa=TRUE")
	}
	if o := strings.TrimSpace(filter.Origen); o != "" {
		where = append(where, "origen LIKE ?")
		args = append(args, "%"+o+"%")
	}
	if d := strings.TrimSpace(filter.Destino); d != "" {
		where = append(where, "destino LIKE ?")
		args = append(args, "%"+d+"%")
	}

	query := `SELECT ` + routeColumns + ` FROM rutas WHERE ` + strings.Join(where, " AND ") + ` ORDER BY origen ASC, hora_salida ASC, id ASC`
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.UnavailableError{Err: err}
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return out, domain.UnavailableError{Err: err}
	}
	return out, nil
}

// Places returns the distinct origins and destinations of active routes
// (the search form's autocomplete source).
func (r RouteRepository) Places() (origins []string, destinations []string, err error) {
	rows, err := r.db().Query(`SELECT DISTINCT origen, destino FROM rutas WHERE activa=TRUE`)
	if err != nil {
		return nil, nil, domain.UnavailableError{Err: err}
	}
	defer rows.Close()

	seenO := map[string]bool{}
	seenD := map[string]bool{}
	for rows.Next() {
		var o, d string
		if err := rows.Scan(&o, &d); err != nil {
			return origins, destinations, domain.InternalError{Err: err}
		}
		if !seenO[o] {
			seenO[o] = true
			origins = append(origins, o)
		}
		if !seenD[d] {
			seenD[d] = true
			destinations = append(destinations, d)
		}
	}
	return origins, destinations, rows.Err()
}

func (r RouteRepository) Create(rt models.Route) (models.Route, error) {
	paradas, err := json.Marshal(rt.Paradas)
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}
	dias, err := json.Marshal(rt.DiasOperativos)
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}

	res, err := r.db().Exec(`
		INSERT INTO rutas (nombre, origen, destino, precio_base, capacidad, hora_salida, hora_llegada, paradas, dias_operativos, activa)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		rt.Nombre, rt.Origen, rt.Destino, rt.PrecioBase, rt.Capacidad,
		rt.HoraSalida, rt.HoraLlegada, string(paradas), string(dias), rt.Activa,
	)
	if err != nil {
		return rt, domain.UnavailableError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}
	rt.ID = id
	return rt, nil
}

// Update performs PATCH-style updates based on key presence.
func (r RouteRepository) Update(id int64, upd models.RouteUpdate) (models.Route, error) {
	if id <= 0 {
		return models.Route{}, domain.ValidationError{Field: "id", Msg: "id no válido"}
	}

	sets := []string{}
	args := []any{}

	if upd.Nombre != nil {
		sets = append(sets, "nombre=?")
		args = append(args, strings.TrimSpace(*upd.Nombre))
	}
	if upd.Origen != nil {
		sets = append(sets, "origen=?")
		args = append(args, strings.TrimSpace(*upd.Origen))
	}
	if upd.Destino != nil {
		sets = append(sets, "destino=?")
		args = append(args, strings.TrimSpace(*upd.Destino))
	}
	if upd.PrecioBase != nil {
		sets = append(sets, "precio_base=?")
		args = append(args, *upd.PrecioBase)
	}
	if upd.Capacidad != nil {
		sets = append(sets, "capacidad=?")
		args = append(args, *upd.Capacidad)
	}
	if upd.HoraSalida != nil {
		sets = append(sets, "hora_salida=?")
		args = append(args, strings.TrimSpace(*upd.HoraSalida))
	}
	if upd.HoraLlegada != nil {
		sets = append(sets, "hora_llegada=?")
		args = append(args, strings.TrimSpace(*upd.HoraLlegada))
	}
	if upd.Paradas != nil {
		raw, err := json.Marshal(*upd.Paradas)
		if err != nil {
			return models.Route{}, domain.InternalError{Err: err}
		}
		sets = append(sets, "paradas=?")
		args = append(args, string(raw))
	}
	if upd.DiasOperativos != nil {
		raw, err := json.Marshal(*upd.DiasOperativos)
		if err != nil {
			return models.Route{}, domain.InternalError{Err: err}
		}
		sets = append(sets, "dias_operativos=?")
		args = append(args, string(raw))
	}
	if upd.Activa != nil {
		sets = append(sets, "activa=?")
		args = append(args, *upd.Activa)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	if _, err := r.db().Exec(`UPDATE rutas SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.Route{}, domain.UnavailableError{Err: err}
	}
	return r.GetByID(id)
}

// SetActiva flips the soft-delete flag; the row stays for the sake of
// historical trips and reservations.
func (r RouteRepository) SetActiva(id int64, activa bool) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id no válido"}
	}
	res, err := r.db().Exec(`UPDATE rutas SET activa=? WHERE id=?`, activa, id)
	if err != nil {
		return domain.UnavailableError{Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// activa may already hold the requested value; confirm existence
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}
