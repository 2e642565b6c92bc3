package utils

import (
	"testing"
	"time"
)

func TestDepartureTimestamp(t *testing.T) {
	ts, err := DepartureTimestamp("2025-06-02", "08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("expected %s, got %s", want, ts)
	}
}

func TestDepartureTimestampWithSeconds(t *testing.T) {
	ts, err := DepartureTimestamp("2025-06-02", "23:59:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Second() != 30 {
		t.Fatalf("seconds lost: %s", ts)
	}
}

func TestDepartureTimestampEmptyHour(t *testing.T) {
	ts, err := DepartureTimestamp("2025-06-02", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Hour() != 0 || ts.Minute() != 0 {
		t.Fatalf("empty hour should default to midnight, got %s", ts)
	}
}

func TestDepartureTimestampStable(t *testing.T) {
	a, _ := DepartureTimestamp("2025-06-02", "08:30")
	b, _ := DepartureTimestamp("2025-06-02", "08:30")
	if !a.Equal(b) {
		t.Fatalf("composite timestamp not stable: %s vs %s", a, b)
	}
}

func TestDepartureTimestampBadInput(t *testing.T) {
	if _, err := DepartureTimestamp("02/06/2025", "08:30"); err == nil {
		t.Fatal("expected error for bad date format")
	}
	if _, err := DepartureTimestamp("2025-06-02", "8h30"); err == nil {
		t.Fatal("expected error for bad hour format")
	}
}

func TestParseFecha(t *testing.T) {
	d, err := ParseFecha(" 2025-12-31 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatFecha(d) != "2025-12-31" {
		t.Fatalf("round trip failed: %s", FormatFecha(d))
	}
}
