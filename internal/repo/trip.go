// Package repo contains the in-memory stores for the Transporte API.
// Each resource has its own file with an interface and a memory implementation.
// No business logic lives here — only collection bookkeeping. State is
// process-lifetime: a restart discards everything.
package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rcamargo/transporte-api/internal/domain"
)

// TripRepo defines the storage operations for Trips.
// The service layer depends on this interface, not the memory implementation,
// which allows services to be unit-tested with a mock.
//
// Every list operation takes an ownerID: 0 means unscoped (open mode),
// any other value restricts results to trips created by that user.
type TripRepo interface {
	// Create assigns the next id, appends the trip and returns the stored record.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// List returns trips in insertion order.
	List(ctx context.Context, ownerID int64) ([]domain.Trip, error)

	// ListByDate returns trips whose Date equals date exactly (string match).
	ListByDate(ctx context.Context, ownerID int64, date string) ([]domain.Trip, error)

	// ListByMonth returns trips whose Date parses as "YYYY-MM-DD" and falls in
	// the given calendar month (1-12) and year. Trips with unparseable dates
	// are silently excluded.
	ListByMonth(ctx context.Context, ownerID int64, month, year int) ([]domain.Trip, error)
}

// memTripRepo is the in-memory implementation of TripRepo.
// It is safe for concurrent use.
type memTripRepo struct {
	mu     sync.RWMutex
	trips  []domain.Trip
	nextID int64
}

// NewTripRepo constructs an empty in-memory TripRepo.
// IDs start at 1 and are monotonically increasing; they are never reused
// (nothing is ever deleted from this store).
func NewTripRepo() TripRepo {
	return &memTripRepo{nextID: 1}
}

// Create assigns the next id and appends the trip.
func (r *memTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	trip.ID = r.nextID
	r.nextID++
	r.trips = append(r.trips, trip)
	return trip, nil
}

// List returns all trips visible to ownerID in insertion order.
func (r *memTripRepo) List(ctx context.Context, ownerID int64) ([]domain.Trip, error) {
	_ = ctx
	return r.collect(ownerID, func(domain.Trip) bool { return true }), nil
}

// ListByDate filters by exact string match on the Date field.
func (r *memTripRepo) ListByDate(ctx context.Context, ownerID int64, date string) ([]domain.Trip, error) {
	_ = ctx
	return r.collect(ownerID, func(t domain.Trip) bool { return t.Date == date }), nil
}

// ListByMonth filters by calendar month and year of the parsed Date field.
// Records whose Date does not parse as "2006-01-02" never match.
func (r *memTripRepo) ListByMonth(ctx context.Context, ownerID int64, month, year int) ([]domain.Trip, error) {
	_ = ctx
	return r.collect(ownerID, func(t domain.Trip) bool {
		d, err := time.Parse("2006-01-02", t.Date)
		if err != nil {
			return false
		}
		return d.Year() == year && int(d.Month()) == month
	}), nil
}

// collect returns the trips visible to ownerID that satisfy keep, preserving
// insertion order. The result is always non-nil so callers can range over it
// and encode it as a JSON array, never null.
func (r *memTripRepo) collect(ownerID int64, keep func(domain.Trip) bool) []domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Trip, 0)
	for _, t := range r.trips {
		if ownerID != 0 && t.OwnerID != ownerID {
			continue
		}
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
