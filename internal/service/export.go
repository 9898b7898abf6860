package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rcamargo/transporte-api/internal/repo"
)

// sheetName is the single worksheet every export contains.
const sheetName = "Viagens"

// spreadsheetHeader is the fixed first row of every export. Column order is
// part of the contract: trip rows are written in exactly this order.
var spreadsheetHeader = []string{
	"Driver", "Plate", "Origin", "Destination", "Date", "Fuel", "Toll", "Freight",
}

// ExportService renders a user's trips into an XLSX workbook.
// It has no validation logic of its own — it trusts the store's filtering.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(r repo.TripRepo) *ExportService {
	return &ExportService{trips: r}
}

// Spreadsheet returns an XLSX workbook with one header row followed by one
// row per trip of ownerID, in insertion order.
func (s *ExportService) Spreadsheet(ctx context.Context, ownerID int64) ([]byte, error) {
	trips, err := s.trips.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Spreadsheet: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("service.ExportService.Spreadsheet: %w", err)
	}

	header := make([]any, len(spreadsheetHeader))
	for i, h := range spreadsheetHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("service.ExportService.Spreadsheet: %w", err)
	}

	for i, t := range trips {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Spreadsheet: %w", err)
		}
		row := []any{t.Driver, t.Plate, t.Origin, t.Destination, t.Date, t.FuelCost, t.TollCost, t.FreightRevenue}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("service.ExportService.Spreadsheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
