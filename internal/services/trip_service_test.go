package services

import (
	"errors"
	"testing"
	"time"

	"boletera/backend/internal/domain"
	"boletera/backend/internal/notify"
	"boletera/backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "viaje_id", "cliente_nombre", "cliente_email",
		"parada_abordaje", "hora_abordaje", "codigo_visual", "firma_seguridad",
		"validado", "created_at"})
}

func newTripService(db *sqlmockDB, n notify.Notifier) TripService {
	return TripService{
		TripRepo:        repositories.TripRepository{DB: db.DB},
		ReservationRepo: repositories.ReservationRepository{DB: db.DB},
		RouteRepo:       repositories.RouteRepository{DB: db.DB},
		Notifier:        n,
	}
}

func expectTripWithTwoReservations(db *sqlmockDB, ts time.Time) {
	db.mock.ExpectQuery("FROM viajes WHERE id").WithArgs(int64(5)).
		WillReturnRows(tripRows().AddRow(int64(5), int64(1), ts, 2))
	db.mock.ExpectQuery("FROM rutas WHERE id").WithArgs(int64(1)).
		WillReturnRows(routeRows().
			AddRow(int64(1), "Express Norte", "Monterrey", "Saltillo", 250.0, 14,
				"08:30", "10:00", "[]", `["Lun"]`, true))
	created := ts.Add(-48 * time.Hour)
	db.mock.ExpectQuery("FROM reservas WHERE viaje_id").WithArgs(int64(5)).
		WillReturnRows(reservationRows().
			AddRow(int64(21), int64(5), "Ana", "ana@example.com", "Monterrey", "08:30",
				"RES-AB12CD", "tok-1", false, created).
			AddRow(int64(22), int64(5), "Bruno", "bruno@example.com", "Monterrey", "08:30",
				"RES-EF34GH", "tok-2", true, created))
}

func TestCancelNotifiesEveryPassengerThenDeletes(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	ts := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	expectTripWithTwoReservations(db, ts)

	db.mock.ExpectBegin()
	db.mock.ExpectExec("DELETE FROM reservas WHERE viaje_id").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	db.mock.ExpectExec("DELETE FROM viajes WHERE id").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	db.mock.ExpectCommit()

	mail := &captureNotifier{}
	svc := newTripService(db, mail)

	if err := svc.Cancel(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mail.msgs) != 2 {
		t.Fatalf("expected one mail per passenger, got %d", len(mail.msgs))
	}
	for _, msg := range mail.msgs {
		if msg.Template != notify.TemplateCancel {
			t.Fatalf("wrong template: %s", msg.Template)
		}
		if msg.Fields["route_name"] != "Monterrey - Saltillo" || msg.Fields["trip_date"] != "2025-06-02" {
			t.Fatalf("wrong mail fields: %+v", msg.Fields)
		}
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelSucceedsEvenWhenEveryMailFails(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	ts := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	expectTripWithTwoReservations(db, ts)

	db.mock.ExpectBegin()
	db.mock.ExpectExec("DELETE FROM reservas WHERE viaje_id").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	db.mock.ExpectExec("DELETE FROM viajes WHERE id").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	db.mock.ExpectCommit()

	mail := &captureNotifier{err: errors.New("smtp relay down")}
	svc := newTripService(db, mail)

	if err := svc.Cancel(5); err != nil {
		t.Fatalf("cancellation must not depend on mail delivery: %v", err)
	}
	if len(mail.msgs) != 2 {
		t.Fatalf("every passenger still gets an attempt, got %d", len(mail.msgs))
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelMissingTrip(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("FROM viajes WHERE id").WithArgs(int64(99)).
		WillReturnRows(tripRows())

	mail := &captureNotifier{}
	svc := newTripService(db, mail)

	err := svc.Cancel(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(mail.msgs) != 0 {
		t.Fatal("nothing to notify for a missing trip")
	}
}

func TestGetAssemblesTripRouteAndReservations(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	ts := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	expectTripWithTwoReservations(db, ts)

	svc := newTripService(db, nil)
	tw, err := svc.Get(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tw.Trip.ID != 5 || tw.Ruta.ID != 1 || len(tw.Reservas) != 2 {
		t.Fatalf("incomplete aggregate: %+v", tw)
	}
}
