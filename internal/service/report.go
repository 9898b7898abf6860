package service

import (
	"context"
	"fmt"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/repo"
)

// ReportService computes daily and monthly aggregates over stored trips.
type ReportService struct {
	trips repo.TripRepo
}

// NewReportService constructs a ReportService backed by the provided TripRepo.
func NewReportService(r repo.TripRepo) *ReportService {
	return &ReportService{trips: r}
}

// Summarize aggregates a trip set into a Report. It is a pure function:
// no side effects, no storage access, and the result is independent of the
// order of the input. An empty set yields the zero Report.
func Summarize(trips []domain.Trip) domain.Report {
	var rep domain.Report
	rep.TripCount = len(trips)
	for _, t := range trips {
		rep.TotalFuel += t.FuelCost
		rep.TotalToll += t.TollCost
		rep.TotalFreight += t.FreightRevenue
	}
	rep.Profit = rep.TotalFreight - (rep.TotalFuel + rep.TotalToll)
	return rep
}

// Daily returns the aggregate report for the trips of ownerID on the given
// date (exact "YYYY-MM-DD" string match).
// Returns domain.ErrValidation if date is empty.
func (s *ReportService) Daily(ctx context.Context, ownerID int64, date string) (domain.Report, error) {
	if date == "" {
		return domain.Report{}, fmt.Errorf("%w: data é obrigatória", domain.ErrValidation)
	}
	trips, err := s.trips.ListByDate(ctx, ownerID, date)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Daily: %w", err)
	}
	return Summarize(trips), nil
}

// Monthly returns the aggregate report for the trips of ownerID in the given
// calendar month (1-12) and year. Trips whose stored date does not parse are
// excluded rather than surfaced as an error.
// Returns domain.ErrValidation for an out-of-range month or year.
func (s *ReportService) Monthly(ctx context.Context, ownerID int64, month, year int) (domain.Report, error) {
	if month < 1 || month > 12 {
		return domain.Report{}, fmt.Errorf("%w: mes deve estar entre 1 e 12", domain.ErrValidation)
	}
	if year < 1 {
		return domain.Report{}, fmt.Errorf("%w: ano inválido", domain.ErrValidation)
	}
	trips, err := s.trips.ListByMonth(ctx, ownerID, month, year)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}
	return Summarize(trips), nil
}
