package services

import (
	"bytes"
	"fmt"
	"strings"

	"boletera/backend/internal/repositories"
	"boletera/backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable boarding pass and the per-trip
// passenger manifest.
type DocsService struct {
	ReservationRepo repositories.ReservationRepository
	TripRepo        repositories.TripRepository
	RouteRepo       repositories.RouteRepository
	RequestID       string

	// test seams, mirror the production loaders when nil
	LoadPass     func(int64) (boardingPassData, error)
	LoadManifest func(int64) (manifestData, error)
}

type boardingPassData struct {
	ReservaID      int64
	CodigoVisual   string
	FirmaSeguridad string
	ClienteNombre  string
	ClienteEmail   string
	Origen         string
	Destino        string
	Fecha          string
	HoraSalida     string
	HoraLlegada    string
	ParadaAbordaje string
	HoraAbordaje   string
	Validado       bool
}

type manifestRow struct {
	CodigoVisual   string
	ClienteNombre  string
	ClienteEmail   string
	ParadaAbordaje string
	Validado       bool
}

type manifestData struct {
	ViajeID   int64
	Nombre    string
	Origen    string
	Destino   string
	Fecha     string
	Hora      string
	Capacidad int
	Ocupados  int
	Pasajeros []manifestRow
}

func (s DocsService) GenerateBoardingPass(reservaID int64) ([]byte, string, error) {
	data, err := s.loadBoardingPassData(reservaID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_boarding_pass", fmt.Sprintf("reserva_id=%d", reservaID))
	return buildBoardingPassPDF(data)
}

func (s DocsService) GenerateManifest(viajeID int64) ([]byte, string, error) {
	data, err := s.loadManifestData(viajeID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_manifest", fmt.Sprintf("viaje_id=%d", viajeID))
	return buildManifestPDF(data)
}

func (s DocsService) loadBoardingPassData(reservaID int64) (boardingPassData, error) {
	if s.LoadPass != nil {
		return s.LoadPass(reservaID)
	}

	var out boardingPassData
	res, err := s.ReservationRepo.GetByID(reservaID)
	if err != nil {
		return out, err
	}
	trip, err := s.TripRepo.GetByID(res.ViajeID)
	if err != nil {
		return out, err
	}
	route, err := s.RouteRepo.GetByID(trip.RutaID)
	if err != nil {
		return out, err
	}

	return boardingPassData{
		ReservaID:      res.ID,
		CodigoVisual:   res.CodigoVisual,
		FirmaSeguridad: res.FirmaSeguridad,
		ClienteNombre:  res.ClienteNombre,
		ClienteEmail:   res.ClienteEmail,
		Origen:         route.Origen,
		Destino:        route.Destino,
		Fecha:          utils.FormatFecha(trip.FechaSalida),
		HoraSalida:     route.HoraSalida,
		HoraLlegada:    route.HoraLlegada,
		ParadaAbordaje: res.ParadaAbordaje,
		HoraAbordaje:   res.HoraAbordaje,
		Validado:       res.Validado,
	}, nil
}

func (s DocsService) loadManifestData(viajeID int64) (manifestData, error) {
	if s.LoadManifest != nil {
		return s.LoadManifest(viajeID)
	}

	var out manifestData
	trip, err := s.TripRepo.GetByID(viajeID)
	if err != nil {
		return out, err
	}
	route, err := s.RouteRepo.GetByID(trip.RutaID)
	if err != nil {
		return out, err
	}
	reservas, err := s.ReservationRepo.ListByTrip(trip.ID)
	if err != nil {
		return out, err
	}

	out = manifestData{
		ViajeID:   trip.ID,
		Nombre:    route.Nombre,
		Origen:    route.Origen,
		Destino:   route.Destino,
		Fecha:     utils.FormatFecha(trip.FechaSalida),
		Hora:      route.HoraSalida,
		Capacidad: route.Capacidad,
		Ocupados:  trip.AsientosOcupados,
	}
	for _, res := range reservas {
		out.Pasajeros = append(out.Pasajeros, manifestRow{
			CodigoVisual:   res.CodigoVisual,
			ClienteNombre:  res.ClienteNombre,
			ClienteEmail:   res.ClienteEmail,
			ParadaAbordaje: res.ParadaAbordaje,
			Validado:       res.Validado,
		})
	}
	return out, nil
}

func buildBoardingPassPDF(d boardingPassData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pase de Abordar", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PASE DE ABORDAR")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Cell(0, 12, d.CodigoVisual)
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Pasajero   : %s", safe(d.ClienteNombre, "-")),
		fmt.Sprintf("Correo     : %s", safe(d.ClienteEmail, "-")),
		fmt.Sprintf("Ruta       : %s -> %s", safe(d.Origen, "-"), safe(d.Destino, "-")),
		fmt.Sprintf("Fecha      : %s", safe(d.Fecha, "-")),
		fmt.Sprintf("Salida     : %s   Llegada: %s", safe(d.HoraSalida, "-"), safe(d.HoraLlegada, "-")),
		fmt.Sprintf("Abordaje   : %s (%s)", safe(d.ParadaAbordaje, "-"), safe(d.HoraAbordaje, "-")),
		fmt.Sprintf("Reserva    : #%d", d.ReservaID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Courier", "", 10)
	pdf.Cell(0, 6, "Credencial: "+d.FirmaSeguridad)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Presenta este pase al conductor al momento de abordar. Te recomendamos llegar 10 minutos antes de la salida.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PASE_%d_%s.pdf", d.ReservaID, safeFilenamePart(d.CodigoVisual))
	return buf.Bytes(), filename, nil
}

func buildManifestPDF(d manifestData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Manifiesto de Pasajeros", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "MANIFIESTO DE PASAJEROS")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Ruta: %s (%s -> %s)", safe(d.Nombre, "-"), safe(d.Origen, "-"), safe(d.Destino, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fecha: %s %s   Ocupación: %d/%d", safe(d.Fecha, "-"), safe(d.Hora, "-"), d.Ocupados, d.Capacidad))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(28, 7, "Código", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 7, "Pasajero", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Correo", "1", 0, "L", false, 0, "")
	pdf.CellFormat(32, 7, "Abordaje", "1", 0, "L", false, 0, "")
	pdf.CellFormat(15, 7, "Abordó", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range d.Pasajeros {
		validado := "No"
		if p.Validado {
			validado = "Sí"
		}
		pdf.CellFormat(28, 6, p.CodigoVisual, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 6, clip(p.ClienteNombre, 34), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, clip(p.ClienteEmail, 38), "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 6, clip(p.ParadaAbordaje, 20), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, validado, "1", 1, "C", false, 0, "")
	}
	if len(d.Pasajeros) == 0 {
		pdf.Cell(0, 8, "Sin reservas registradas.")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFIESTO_%d_%s.pdf", d.ViajeID, safeFilenamePart(d.Fecha))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func clip(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max]
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
