// Package service contains the business logic for the Transporte API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No HTTP or storage details live here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{trips: r}
}

// Create validates and stores a new trip.
// Returns domain.ErrValidation if input violates business rules; on failure
// the store is not touched.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// List returns the trips visible to ownerID in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, ownerID int64) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// validateTrip enforces the record invariants:
//   - the four text fields and the date must be non-blank
//   - the three amounts must be non-negative (zero is a legal amount)
//
// Field presence is checked at the HTTP layer, where an absent field is
// distinguishable from a zero value.
func validateTrip(trip domain.Trip) error {
	for _, f := range []struct {
		name, value string
	}{
		{"motorista", trip.Driver},
		{"placa", trip.Plate},
		{"origem", trip.Origin},
		{"destino", trip.Destination},
		{"data", trip.Date},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s é obrigatório", domain.ErrValidation, f.name)
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"combustivel", trip.FuelCost},
		{"pedagio", trip.TollCost},
		{"frete", trip.FreightRevenue},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s não pode ser negativo", domain.ErrValidation, f.name)
		}
	}
	return nil
}
