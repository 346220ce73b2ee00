package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
	"travelmitr/internal/repositories"
	"travelmitr/internal/utils"
)

// ItineraryService renders a saved trip as a one-page PDF.
type ItineraryService struct {
	Trips     TripStore
	RequestID string
	Loader    func(ctx context.Context, tripID, userID domain.ID) (models.Trip, error)
	Now       func() time.Time
}

func NewItineraryService(db intdb.DBTX, requestID string) ItineraryService {
	return ItineraryService{Trips: repositories.TripRepository{DB: db}, RequestID: requestID}
}

// Generate returns the PDF bytes and a download filename for an owned trip.
func (s ItineraryService) Generate(ctx context.Context, userID, tripID domain.ID) ([]byte, string, error) {
	trip, err := s.load(ctx, tripID, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", fmt.Sprintf("trip_id=%d", tripID))
	return buildItineraryPDF(trip, s.now())
}

func (s ItineraryService) load(ctx context.Context, tripID, userID domain.ID) (models.Trip, error) {
	if s.Loader != nil {
		return s.Loader(ctx, tripID, userID)
	}
	return s.Trips.FindByID(ctx, tripID, userID)
}

func (s ItineraryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildItineraryPDF(t models.Trip, printed time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Itinerary", false)
	pdf.SetAuthor("Travel Mitr", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Trip #%d  |  Planned %s  |  Printed %s",
		t.ID, utils.FormatDateTime(t.CreatedAt), utils.FormatDateTime(printed)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Route")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("From : %s", place(t.SourceName, t.SourceCity, t.SourceState)),
		fmt.Sprintf("To   : %s", place(t.DestName, t.DestCity, t.DestState)),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Recommended option")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Mode      : %s", utils.Fallback(string(t.SelectedMode), "-")),
		fmt.Sprintf("Est. cost : %s", utils.FormatRupeeASCII(t.TotalCost)),
		fmt.Sprintf("Duration  : %s", utils.FormatMinutes(t.TotalDuration)),
		fmt.Sprintf("Comfort   : %d / 10", t.ComfortScore),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Fares and durations are estimates taken when the trip was planned and may differ at booking time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render itinerary", Err: err}
	}

	filename := fmt.Sprintf("ITINERARY_%d_%s.pdf", t.ID, utils.SafeFilenamePart(t.SourceCity+"_"+t.DestCity))
	return buf.Bytes(), filename, nil
}

func place(name, city, state string) string {
	name = utils.Fallback(name, "-")
	if city == "" && state == "" {
		return name
	}
	return fmt.Sprintf("%s, %s, %s", name, utils.Fallback(city, "-"), utils.Fallback(state, "-"))
}
