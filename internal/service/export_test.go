package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/repo"
	"github.com/rcamargo/transporte-api/internal/service"
)

// openWorkbook parses the produced bytes back into a workbook so the test
// asserts on real cell contents, not on opaque binary output.
func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExportService_Spreadsheet_HeaderAndRows(t *testing.T) {
	trips := repo.NewTripRepo()
	ctx := context.Background()

	_, err := trips.Create(ctx, domain.Trip{
		OwnerID: 7, Driver: "João", Plate: "ABC-1234", Origin: "São Paulo",
		Destination: "Curitiba", Date: "2024-03-01",
		FuelCost: 100, TollCost: 20, FreightRevenue: 300,
	})
	require.NoError(t, err)

	svc := service.NewExportService(trips)
	b, err := svc.Spreadsheet(ctx, 7)
	require.NoError(t, err)

	f := openWorkbook(t, b)

	rows, err := f.GetRows("Viagens")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Fixed header row, in contract order.
	assert.Equal(t, []string{
		"Driver", "Plate", "Origin", "Destination", "Date", "Fuel", "Toll", "Freight",
	}, rows[0])

	// One data row per trip, columns matching the header order.
	assert.Equal(t, []string{
		"João", "ABC-1234", "São Paulo", "Curitiba", "2024-03-01", "100", "20", "300",
	}, rows[1])
}

func TestExportService_Spreadsheet_ScopedToOwner(t *testing.T) {
	trips := repo.NewTripRepo()
	ctx := context.Background()

	for _, owner := range []int64{7, 8, 7} {
		_, err := trips.Create(ctx, domain.Trip{
			OwnerID: owner, Driver: "João", Plate: "ABC-1234", Origin: "A",
			Destination: "B", Date: "2024-03-01",
			FuelCost: 1, TollCost: 1, FreightRevenue: 1,
		})
		require.NoError(t, err)
	}

	svc := service.NewExportService(trips)
	b, err := svc.Spreadsheet(ctx, 7)
	require.NoError(t, err)

	f := openWorkbook(t, b)
	rows, err := f.GetRows("Viagens")
	require.NoError(t, err)

	// Header plus the two trips owned by user 7 — the other user's trip
	// never reaches the workbook.
	assert.Len(t, rows, 3)
}

func TestExportService_Spreadsheet_NoTrips_HeaderOnly(t *testing.T) {
	svc := service.NewExportService(repo.NewTripRepo())

	b, err := svc.Spreadsheet(context.Background(), 7)
	require.NoError(t, err)

	f := openWorkbook(t, b)
	rows, err := f.GetRows("Viagens")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
