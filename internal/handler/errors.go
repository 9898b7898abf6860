package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rcamargo/transporte-api/internal/domain"
)

// errorBody is the wire shape of every error response: {"erro": "<mensagem>"}.
type errorBody struct {
	Erro string `json:"erro"`
}

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders an error response in the API's standard shape.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Erro: message})
}

// writeServiceError maps a service-layer error onto the HTTP surface:
// validation and conflict failures become 400, auth failures 401, and
// anything else a logged 500 with an opaque message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, unwrapMessage(err))
	case errors.Is(err, domain.ErrAuth):
		writeError(w, http.StatusUnauthorized, unwrapMessage(err))
	default:
		slog.Error("unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "erro interno")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.AuthService.Register: conflito: email já cadastrado"
// → "email já cadastrado".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefixes := []string{
		"service.TripService.Create: ",
		"service.TripService.List: ",
		"service.ReportService.Daily: ",
		"service.ReportService.Monthly: ",
		"service.AuthService.Register: ",
		"service.AuthService.Login: ",
		"repo.UserRepo.Create: ",
		domain.ErrValidation.Error() + ": ",
		domain.ErrConflict.Error() + ": ",
		domain.ErrAuth.Error() + ": ",
	}
	for changed := true; changed; {
		changed = false
		for _, p := range prefixes {
			if strings.HasPrefix(msg, p) && len(msg) > len(p) {
				msg = msg[len(p):]
				changed = true
			}
		}
	}
	return msg
}
