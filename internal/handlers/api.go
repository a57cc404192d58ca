package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

const version = "1.0.0"

type APIHandlers struct {
	analyzer *services.Analyzer
	library  *services.Library
	logger   *slog.Logger
}

func NewAPIHandlers(analyzer *services.Analyzer, library *services.Library, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analyzer: analyzer,
		library:  library,
		logger:   logger,
	}
}

// HandleAnalyze rates an uploaded sales report and items report.
func (h *APIHandlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())
	defer cleanupForm(r)

	files, err := readUploads(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}
	defer files.Close()

	analysis, err := h.analyzer.Analyze(r.Context(), files.sales, files.items)
	if err != nil {
		errors.WriteError(w, h.logger, errors.FromReport(err), requestID)
		return
	}

	errors.WriteSuccessWithHeaders(w, analysis, map[string]string{
		"Cache-Control": "no-store",
	})
}

func (h *APIHandlers) HandleListReports(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]any{
		"months": h.library.List(),
	})
}

func (h *APIHandlers) HandleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())
	month := r.PathValue("month")

	charts, err := h.library.Charts(r.Context(), month)
	if err != nil {
		errors.WriteError(w, h.logger, monthError(err), requestID)
		return
	}

	errors.WriteSuccessWithHeaders(w, charts, map[string]string{
		"Cache-Control": "public, max-age=300",
	})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   version,
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.analyzer.Stats()
	stats["monthly_reports"] = len(h.library.List())
	errors.WriteSuccess(w, stats)
}

func monthError(err error) error {
	if stderrors.Is(err, services.ErrUnknownReport) {
		return errors.NotFound(err.Error())
	}
	return errors.FromReport(err)
}
