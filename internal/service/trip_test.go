package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/repo"
	"github.com/rcamargo/transporte-api/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
type mockTripRepo struct {
	create      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	list        func(ctx context.Context, ownerID int64) ([]domain.Trip, error)
	listByDate  func(ctx context.Context, ownerID int64, date string) ([]domain.Trip, error)
	listByMonth func(ctx context.Context, ownerID int64, month, year int) ([]domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) List(ctx context.Context, ownerID int64) ([]domain.Trip, error) {
	return m.list(ctx, ownerID)
}
func (m *mockTripRepo) ListByDate(ctx context.Context, ownerID int64, date string) ([]domain.Trip, error) {
	return m.listByDate(ctx, ownerID, date)
}
func (m *mockTripRepo) ListByMonth(ctx context.Context, ownerID int64, month, year int) ([]domain.Trip, error) {
	return m.listByMonth(ctx, ownerID, month, year)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Driver:         "João",
		Plate:          "ABC-1234",
		Origin:         "São Paulo",
		Destination:    "Curitiba",
		Date:           "2024-03-01",
		FuelCost:       100,
		TollCost:       20,
		FreightRevenue: 300,
	}
}

func echoRepo() *mockTripRepo {
	// A repo that echoes whatever it receives back — useful for Create tests
	// that only care about validation logic, not what the store returns.
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, "João", got.Driver)
}

func TestTripService_Create_BlankTextFields(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	for name, mutate := range map[string]func(*domain.Trip){
		"motorista": func(tr *domain.Trip) { tr.Driver = "   " },
		"placa":     func(tr *domain.Trip) { tr.Plate = "" },
		"origem":    func(tr *domain.Trip) { tr.Origin = "" },
		"destino":   func(tr *domain.Trip) { tr.Destination = "" },
		"data":      func(tr *domain.Trip) { tr.Date = "" },
	} {
		trip := validTrip()
		mutate(&trip)

		_, err := svc.Create(context.Background(), trip)

		assert.ErrorIs(t, err, domain.ErrValidation, "campo %s", name)
	}
}

func TestTripService_Create_NegativeAmount(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.FuelCost = -1

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_ZeroAmountIsValid(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.TollCost = 0 // a toll-free route is a legal record

	_, err := svc.Create(context.Background(), trip)

	assert.NoError(t, err)
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("store exploded")
	r := &mockTripRepo{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, repoErr
		},
	}
	svc := service.NewTripService(r)

	_, err := svc.Create(context.Background(), validTrip())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- List tests ------------------------------------------------------------

func TestTripService_List(t *testing.T) {
	trips := []domain.Trip{validTrip(), validTrip()}
	r := &mockTripRepo{
		list: func(_ context.Context, ownerID int64) ([]domain.Trip, error) {
			assert.Equal(t, int64(7), ownerID)
			return trips, nil
		},
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTripService_List_Empty(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context, _ int64) ([]domain.Trip, error) { return nil, nil },
	}
	svc := service.NewTripService(r)

	got, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	// Should return an empty slice, not nil — callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
