package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/middleware"
)

// createTripRequest is the POST /viagens body. Every field is required;
// pointer fields make an absent field distinguishable from a zero value,
// so `"combustivel": 0` is accepted while a missing "combustivel" is not.
type createTripRequest struct {
	Driver         *string  `json:"motorista"`
	Plate          *string  `json:"placa"`
	Origin         *string  `json:"origem"`
	Destination    *string  `json:"destino"`
	Date           *string  `json:"data"`
	FuelCost       *float64 `json:"combustivel"`
	TollCost       *float64 `json:"pedagio"`
	FreightRevenue *float64 `json:"frete"`
}

// createTripResponse echoes the stored record back to the caller.
type createTripResponse struct {
	Mensagem string      `json:"mensagem"`
	Viagem   domain.Trip `json:"viagem"`
}

// CreateTrip handles POST /viagens.
// 400 if any of the eight fields is missing or invalid; 200 with the stored
// record (including its freshly assigned id) on success.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	trip, err := requestToTrip(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// 0 in open mode; the trip is then unowned.
	trip.OwnerID, _ = middleware.UserIDFromContext(r.Context())

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createTripResponse{Mensagem: "Viagem adicionada", Viagem: created})
}

// ListTrips handles GET /viagens.
// Returns the caller's trips (all trips in open mode) in insertion order.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	trips, err := s.trips.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

// requestToTrip converts a createTripRequest into a domain.Trip.
// Returns an error if any field is absent; the message matches the original
// API's single generic complaint.
func requestToTrip(body createTripRequest) (domain.Trip, error) {
	if body.Driver == nil || body.Plate == nil || body.Origin == nil || body.Destination == nil ||
		body.Date == nil || body.FuelCost == nil || body.TollCost == nil || body.FreightRevenue == nil {
		return domain.Trip{}, errors.New("Todos os campos são obrigatórios")
	}
	return domain.Trip{
		Driver:         *body.Driver,
		Plate:          *body.Plate,
		Origin:         *body.Origin,
		Destination:    *body.Destination,
		Date:           *body.Date,
		FuelCost:       *body.FuelCost,
		TollCost:       *body.TollCost,
		FreightRevenue: *body.FreightRevenue,
	}, nil
}
