package models

// Stop is an intermediate boarding point with its own fare.
type Stop struct {
	Name   string  `json:"name"`
	Time   string  `json:"time"`
	Precio float64 `json:"precio"`
}

// Route mirrors the rutas table: a recurring scheduled service.
// JSON tags follow the frontend contract (Spanish field names).
type Route struct {
	ID             int64    `json:"id"`
	Nombre         string   `json:"nombre"`
	Origen         string   `json:"origen"`
	Destino        string   `json:"destino"`
	PrecioBase     float64  `json:"precio_base"`
	Capacidad      int      `json:"capacidad"`
	HoraSalida     string   `json:"hora_salida"`
	HoraLlegada    string   `json:"hora_llegada"`
	Paradas        []Stop   `json:"paradas"`
	DiasOperativos []string `json:"dias_operativos"`
	Activa         bool     `json:"activa"`
}

// OperatesOn reports whether the route runs on the given day label
// (Dom/Lun/Mar/Mie/Jue/Vie/Sab).
func (r Route) OperatesOn(dayLabel string) bool {
	for _, d := range r.DiasOperativos {
		if d == dayLabel {
			return true
		}
	}
	return false
}

// RouteUpdate supports PATCH-style updates via key presence.
type RouteUpdate struct {
	Nombre         *string   `json:"nombre"`
	Origen         *string   `json:"origen"`
	Destino        *string   `json:"destino"`
	PrecioBase     *float64  `json:"precio_base"`
	Capacidad      *int      `json:"capacidad"`
	HoraSalida     *string   `json:"hora_salida"`
	HoraLlegada    *string   `json:"hora_llegada"`
	Paradas        *[]Stop   `json:"paradas"`
	DiasOperativos *[]string `json:"dias_operativos"`
	Activa         *bool     `json:"activa"`
}
