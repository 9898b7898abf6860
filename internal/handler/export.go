package handler

import (
	"fmt"
	"net/http"

	"github.com/rcamargo/transporte-api/internal/middleware"
)

// ExportSpreadsheet handles GET /planilha.
// Returns the caller's trips as an XLSX attachment named
// viagens_usuario_<userId>.xlsx. The route is always registered behind the
// auth middleware, so a missing user id means a wiring bug, not bad input.
func (s *Server) ExportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token ausente")
		return
	}

	workbook, err := s.export.Spreadsheet(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="viagens_usuario_%d.xlsx"`, userID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
