package utils

import (
	"fmt"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseFecha parses YYYY-MM-DD as a UTC calendar date.
func ParseFecha(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// FormatFecha formats a timestamp back to YYYY-MM-DD (UTC).
func FormatFecha(t time.Time) string {
	return t.UTC().Format(layoutDate)
}

// DepartureTimestamp combines a calendar date with a route's HH:MM (or
// HH:MM:SS) departure time into the canonical UTC departure instant.
// Every trip lookup and insert goes through this so the composite
// (ruta, fecha_salida) key stays byte-stable.
func DepartureTimestamp(fecha string, horaSalida string) (time.Time, error) {
	day, err := ParseFecha(fecha)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha no válida %q: %w", fecha, err)
	}

	hora := strings.TrimSpace(horaSalida)
	if hora == "" {
		hora = "00:00"
	}
	layout := "15:04"
	if strings.Count(hora, ":") == 2 {
		layout = "15:04:05"
	}
	tod, err := time.Parse(layout, hora)
	if err != nil {
		return time.Time{}, fmt.Errorf("hora de salida no válida %q: %w", horaSalida, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC), nil
}
