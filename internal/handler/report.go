package handler

import (
	"net/http"
	"strconv"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/middleware"
)

// dailyReportResponse embeds the aggregate and echoes the requested date.
type dailyReportResponse struct {
	Date string `json:"data"`
	domain.Report
}

// monthlyReportResponse embeds the aggregate and echoes the requested period.
type monthlyReportResponse struct {
	Month int `json:"mes"`
	Year  int `json:"ano"`
	domain.Report
}

// DailyReport handles GET /relatorio/dia?data=YYYY-MM-DD.
// 400 if the data parameter is missing; otherwise the aggregate over the
// caller's trips with exactly that date.
func (s *Server) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("data")
	if date == "" {
		writeError(w, http.StatusBadRequest, "Data é obrigatória (YYYY-MM-DD)")
		return
	}

	ownerID, _ := middleware.UserIDFromContext(r.Context())

	rep, err := s.reports.Daily(r.Context(), ownerID, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyReportResponse{Date: date, Report: rep})
}

// MonthlyReport handles GET /relatorio/mes?mes=M&ano=YYYY.
// 400 if either parameter is missing or not a number; otherwise the
// aggregate over the caller's trips in that calendar month.
func (s *Server) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	mesStr := r.URL.Query().Get("mes")
	anoStr := r.URL.Query().Get("ano")
	if mesStr == "" || anoStr == "" {
		writeError(w, http.StatusBadRequest, "Mes e ano são obrigatórios")
		return
	}

	mes, errMes := strconv.Atoi(mesStr)
	ano, errAno := strconv.Atoi(anoStr)
	if errMes != nil || errAno != nil {
		writeError(w, http.StatusBadRequest, "Mes e ano devem ser numéricos")
		return
	}

	ownerID, _ := middleware.UserIDFromContext(r.Context())

	rep, err := s.reports.Monthly(r.Context(), ownerID, mes, ano)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, monthlyReportResponse{Month: mes, Year: ano, Report: rep})
}
