// Package handler implements the HTTP handlers for the Transporte API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, report.go, auth.go, export.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/rcamargo/transporte-api/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context, ownerID int64) ([]domain.Trip, error)
}

// ReportServicer defines the aggregation operations the report handlers
// depend on.
type ReportServicer interface {
	Daily(ctx context.Context, ownerID int64, date string) (domain.Report, error)
	Monthly(ctx context.Context, ownerID int64, month, year int) (domain.Report, error)
}

// AuthServicer defines the account operations the register/login handlers
// depend on. Nil in open mode — those routes are not registered then.
type AuthServicer interface {
	Register(ctx context.Context, name, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// ExportServicer defines the spreadsheet operation the export handler
// depends on.
type ExportServicer interface {
	Spreadsheet(ctx context.Context, ownerID int64) ([]byte, error)
}

// Server implements all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips   TripServicer
	reports ReportServicer
	auth    AuthServicer
	export  ExportServicer
}

// NewServer constructs the Server with all its dependencies.
// auth and export may be nil in open mode; the router never registers the
// routes that would use them.
func NewServer(trips TripServicer, reports ReportServicer, auth AuthServicer, export ExportServicer) *Server {
	return &Server{trips: trips, reports: reports, auth: auth, export: export}
}
