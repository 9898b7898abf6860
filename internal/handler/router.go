package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers all API routes on a chi router.
//
// authMW gates every trip, report and export route. Passing nil selects open
// mode: register/login/planilha are not registered at all and the remaining
// routes are unauthenticated and unscoped.
func NewRouter(s *Server, authMW func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Health)

	if authMW == nil {
		r.Post("/viagens", s.CreateTrip)
		r.Get("/viagens", s.ListTrips)
		r.Get("/relatorio/dia", s.DailyReport)
		r.Get("/relatorio/mes", s.MonthlyReport)
		return r
	}

	r.Post("/register", s.Register)
	r.Post("/login", s.Login)

	r.Group(func(g chi.Router) {
		g.Use(authMW)
		g.Post("/viagens", s.CreateTrip)
		g.Get("/viagens", s.ListTrips)
		g.Get("/relatorio/dia", s.DailyReport)
		g.Get("/relatorio/mes", s.MonthlyReport)
		g.Get("/planilha", s.ExportSpreadsheet)
	})

	return r
}
