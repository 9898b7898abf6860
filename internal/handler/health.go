package handler

import "net/http"

// healthBody is the GET / response.
type healthBody struct {
	Status string `json:"status"`
}

// Health handles GET /.
// It returns HTTP 200 with a short status message when the server is up.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "API Transporte rodando"})
}
