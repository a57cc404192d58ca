package handlers

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/ui/templates"
)

type SSEHandlers struct {
	analyzer *services.Analyzer
	library  *services.Library
	logger   *slog.Logger
}

func NewSSEHandlers(analyzer *services.Analyzer, library *services.Library, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analyzer: analyzer,
		library:  library,
		logger:   logger,
	}
}

func (h *SSEHandlers) renderComponent(r *http.Request, c templ.Component) (string, error) {
	var buf strings.Builder
	err := c.Render(r.Context(), &buf)
	return buf.String(), err
}

// HandleAnalyze rates the uploaded form and patches the rating panel and
// chart signals. Rejected uploads are reported inside the panel.
func (h *SSEHandlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	defer cleanupForm(r)

	files, err := readUploads(r)
	if err != nil {
		h.patchError(w, r, err)
		return
	}
	defer files.Close()

	analysis, err := h.analyzer.Analyze(r.Context(), files.sales, files.items)
	if err != nil {
		h.patchError(w, r, errors.FromReport(err))
		return
	}

	html, err := h.renderComponent(r, templates.RatingPanel(analysis.Rating, analysis.Stars))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "render rating panel", "error", err)
		return
	}

	signals, err := json.Marshal(map[string]any{
		"salesData":      analysis.Sales,
		"categoriesData": analysis.Categories,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "marshal analysis signals", "error", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElements(html)
	sse.PatchSignals(signals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleMonthlyReport pushes the chart series of one monthly sales file.
func (h *SSEHandlers) HandleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month := r.PathValue("month")

	sales, err := h.library.Load(r.Context(), month)
	if err != nil {
		h.logger.WarnContext(r.Context(), "monthly report unavailable", "month", month, "error", err)
		html, renderErr := h.renderComponent(r, templates.MonthError(monthMessage(err)))
		if renderErr != nil {
			h.logger.ErrorContext(r.Context(), "render month error", "error", renderErr)
			return
		}
		sse := datastar.NewSSE(w, r)
		sse.PatchElements(html)
		return
	}

	signals, err := json.Marshal(map[string]any{
		"salesData": services.SalesCharts(sales),
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "marshal monthly signals", "error", err)
		return
	}

	html, err := h.renderComponent(r, templates.MonthStatus(month, len(sales)))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "render month status", "error", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchSignals(signals)
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) patchError(w http.ResponseWriter, r *http.Request, err error) {
	message, details := "The reports could not be analyzed", ""

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		message, details = appErr.Message, appErr.Details
	} else {
		h.logger.ErrorContext(r.Context(), "analysis failed", "error", err)
	}

	html, renderErr := h.renderComponent(r, templates.RatingError(message, details))
	if renderErr != nil {
		h.logger.ErrorContext(r.Context(), "render rating error", "error", renderErr)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElements(html)
}

func monthMessage(err error) string {
	if stderrors.Is(err, services.ErrUnknownReport) {
		return "No sales file for that month"
	}
	var appErr *errors.AppError
	if stderrors.As(errors.FromReport(err), &appErr) {
		return appErr.Message + ": " + appErr.Details
	}
	return "The monthly report could not be loaded"
}
