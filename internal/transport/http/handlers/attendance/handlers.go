package attendancehandler

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/domain/attendance"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/api"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/middleware"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/transport/http/shared"
)

type Handler struct {
	Service     *attendance.Service
	DefaultDays int
}

func NewHandler(service *attendance.Service, defaultDays int) *Handler {
	if defaultDays <= 0 {
		defaultDays = attendance.DefaultWindowDays
	}
	return &Handler{Service: service, DefaultDays: defaultDays}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/matrix", h.handleMatrix)
		r.Get("/matrix/export", h.handleMatrixExport)
		r.Get("/stats", h.handleStats)
		r.Get("/stats/employees/{userID}", h.handleEmployeeStats)
		r.Get("/strategic/classify", h.handleClassify)
		r.Get("/strategic/report", h.handleStrategicReport)
		r.Get("/strategic/report/pdf", h.handleStrategicReportPDF)
	})
}

func (h *Handler) yearMonth(r *http.Request) (int, int, bool) {
	now := h.Service.Now()
	year, month := now.Year(), int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, false
		}
		month = parsed
	}
	return year, month, true
}

func (h *Handler) windowDays(r *http.Request) int {
	v := r.URL.Query().Get("days")
	if v == "" {
		return h.DefaultDays
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return h.DefaultDays
	}
	return parsed
}

func (h *Handler) handleMatrix(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	year, month, ok := h.yearMonth(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "invalid year or month", middleware.GetRequestID(r.Context()))
		return
	}

	matrix, err := h.Service.BuildMonthMatrix(r.Context(), user.OrgID, year, month)
	if err != nil {
		slog.Warn("attendance matrix failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "matrix_failed", "failed to build attendance matrix", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, matrix, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMatrixExport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	year, month, ok := h.yearMonth(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "invalid year or month", middleware.GetRequestID(r.Context()))
		return
	}

	matrix, err := h.Service.BuildMonthMatrix(r.Context(), user.OrgID, year, month)
	if err != nil {
		slog.Warn("attendance matrix export failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "matrix_failed", "failed to build attendance matrix", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=presenze-%04d-%02d.csv", year, month))
	writer := csv.NewWriter(w)

	header := []string{"Dipendente", "Riga"}
	for day := 1; day <= matrix.DaysInMonth; day++ {
		header = append(header, strconv.Itoa(day))
	}
	_ = writer.Write(header)

	for _, row := range matrix.Rows {
		ordinary := []string{row.Name, "Ordinarie"}
		for _, hours := range row.Ordinary {
			if hours == 0 {
				ordinary = append(ordinary, "")
				continue
			}
			ordinary = append(ordinary, strconv.FormatFloat(hours, 'f', -1, 64))
		}
		_ = writer.Write(ordinary)

		extra := append([]string{row.Name, "Straordinari/Assenze"}, row.Extra...)
		_ = writer.Write(extra)
	}
	writer.Flush()
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	stats, err := h.Service.AggregateAbsences(r.Context(), user.OrgID, h.windowDays(r))
	if err != nil {
		slog.Warn("absence stats failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to aggregate absences", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	userID := chi.URLParam(r, "userID")

	stats, err := h.Service.AggregateEmployeeAbsences(r.Context(), user.OrgID, userID, h.windowDays(r))
	if err != nil {
		slog.Warn("employee absence stats failed", "err", err, "userId", userID)
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to aggregate absences", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	day, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || day.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Service.Calendar.ClassifyStrategic(day), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStrategicReport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	text, err := h.Service.RenderStrategicReport(r.Context(), user.OrgID, h.windowDays(r))
	if err != nil {
		slog.Warn("strategic report failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render strategic report", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (h *Handler) handleStrategicReportPDF(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	text, err := h.Service.RenderStrategicReport(r.Context(), user.OrgID, h.windowDays(r))
	if err != nil {
		slog.Warn("strategic report failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render strategic report", middleware.GetRequestID(r.Context()))
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Courier", "", 9)
	for _, line := range strings.Split(text, "\n") {
		pdf.Cell(0, 4.5, translate(line))
		pdf.Ln(4.5)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=assenze-strategiche-%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.Output(w); err != nil {
		slog.Warn("strategic report pdf output failed", "err", err)
	}
}
