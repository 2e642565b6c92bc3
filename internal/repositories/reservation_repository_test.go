package repositories

import (
	"testing"
	"time"

	"boletera/backend/internal/domain"
	"boletera/backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func reservationColumnNames() []string {
	return []string{"id", "viaje_id", "cliente_nombre", "cliente_email",
		"parada_abordaje", "hora_abordaje", "codigo_visual", "firma_seguridad",
		"validado", "created_at"}
}

func TestReservationInsertNullsOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservas").
		WithArgs(int64(7), "Ana", "ana@example.com", nil, nil, "RES-AB12CD", "tok-1", false).
		WillReturnResult(sqlmock.NewResult(21, 1))

	repo := ReservationRepository{DB: db}
	res, err := repo.Insert(models.Reservation{
		ViajeID:        7,
		ClienteNombre:  " Ana ",
		ClienteEmail:   "ana@example.com",
		CodigoVisual:   "RES-AB12CD",
		FirmaSeguridad: "tok-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != 21 {
		t.Fatalf("expected id 21, got %d", res.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByTokenNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM reservas WHERE firma_seguridad").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(reservationColumnNames()))

	repo := ReservationRepository{DB: db}
	_, err = repo.GetByToken("nope")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestMarkValidatedOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM reservas WHERE firma_seguridad").
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows(reservationColumnNames()).
			AddRow(int64(21), int64(7), "Ana", "ana@example.com", "", "", "RES-AB12CD", "tok-1", false, created))
	mock.ExpectExec("UPDATE reservas SET validado=TRUE").
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ReservationRepository{DB: db}
	res, err := repo.MarkValidated("tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Validado {
		t.Fatal("reservation should come back validated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkValidatedSecondScanConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM reservas WHERE firma_seguridad").
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows(reservationColumnNames()).
			AddRow(int64(21), int64(7), "Ana", "ana@example.com", "", "", "RES-AB12CD", "tok-1", true, created))

	repo := ReservationRepository{DB: db}
	_, err = repo.MarkValidated("tok-1")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on already-validated pass, got %v", err)
	}
}
