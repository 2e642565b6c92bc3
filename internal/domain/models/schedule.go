package models

import "time"

// DayLabels maps time.Weekday to the short Spanish labels stored in
// dias_operativos (index 0 = Sunday).
var DayLabels = [7]string{"Dom", "Lun", "Mar", "Mie", "Jue", "Vie", "Sab"}

// DayLabel returns the short label for a calendar date.
func DayLabel(t time.Time) string {
	return DayLabels[int(t.Weekday())]
}

// DepartureDate is one candidate calendar date produced by the
// schedule resolver.
type DepartureDate struct {
	Fecha     time.Time
	DiaSemana string
}

// OperatingDates resolves the calendar dates within [from, from+windowDays)
// on which the route operates, in ascending order. Pure function: no I/O,
// restartable by calling again with the same arguments. An empty
// dias_operativos set yields an empty slice.
func OperatingDates(route Route, from time.Time, windowDays int) []DepartureDate {
	out := []DepartureDate{}
	if len(route.DiasOperativos) == 0 || windowDays <= 0 {
		return out
	}

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < windowDays; i++ {
		d := day.AddDate(0, 0, i)
		label := DayLabel(d)
		if route.OperatesOn(label) {
			out = append(out, DepartureDate{Fecha: d, DiaSemana: label})
		}
	}
	return out
}
