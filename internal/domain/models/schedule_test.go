package models

import (
	"testing"
	"time"
)

func TestOperatingDatesMonWedFromSunday(t *testing.T) {
	route := Route{DiasOperativos: []string{"Lun", "Mie"}}
	// 2025-06-01 is a Sunday
	from := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	dates := OperatingDates(route, from, 7)
	if len(dates) != 2 {
		t.Fatalf("expected 2 operating dates in a 7-day window, got %d", len(dates))
	}
	if dates[0].DiaSemana != "Lun" || dates[0].Fecha.Format("2006-01-02") != "2025-06-02" {
		t.Fatalf("first date wrong: %+v", dates[0])
	}
	if dates[1].DiaSemana != "Mie" || dates[1].Fecha.Format("2006-01-02") != "2025-06-04" {
		t.Fatalf("second date wrong: %+v", dates[1])
	}
	for _, d := range dates {
		wd := d.Fecha.Weekday()
		if wd != time.Monday && wd != time.Wednesday {
			t.Fatalf("date %s falls on %s", d.Fecha, wd)
		}
	}
}

func TestOperatingDatesIncludesToday(t *testing.T) {
	route := Route{DiasOperativos: []string{"Dom"}}
	from := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC) // Sunday, late

	dates := OperatingDates(route, from, 7)
	if len(dates) != 1 {
		t.Fatalf("expected just today, got %d dates", len(dates))
	}
	if dates[0].Fecha.Format("2006-01-02") != "2025-06-01" {
		t.Fatalf("window should include today, got %s", dates[0].Fecha)
	}
}

func TestOperatingDatesEmptyDaySet(t *testing.T) {
	route := Route{DiasOperativos: nil}
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if dates := OperatingDates(route, from, 30); len(dates) != 0 {
		t.Fatalf("empty dias_operativos must yield no dates, got %d", len(dates))
	}
}

func TestOperatingDatesRestartable(t *testing.T) {
	route := Route{DiasOperativos: []string{"Vie"}}
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first := OperatingDates(route, from, 14)
	second := OperatingDates(route, from, 14)
	if len(first) != len(second) {
		t.Fatalf("resolver not restartable: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Fecha.Equal(second[i].Fecha) {
			t.Fatalf("resolver not deterministic at %d", i)
		}
	}
}

func TestDayLabel(t *testing.T) {
	// 2025-06-02 is a Monday
	if got := DayLabel(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)); got != "Lun" {
		t.Fatalf("expected Lun, got %s", got)
	}
	if got := DayLabel(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)); got != "Sab" {
		t.Fatalf("expected Sab, got %s", got)
	}
}
