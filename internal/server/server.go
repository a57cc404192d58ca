package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/services"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	apiHandlers  *handlers.APIHandlers
	sseHandlers  *handlers.SSEHandlers
	pageHandlers *handlers.PageHandlers
}

func NewServer(analyzer *services.Analyzer, library *services.Library, logger *slog.Logger) *Server {
	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		apiHandlers:  handlers.NewAPIHandlers(analyzer, library, logger),
		sseHandlers:  handlers.NewSSEHandlers(analyzer, library, logger),
		pageHandlers: handlers.NewPageHandlers(library, logger),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /{$}", s.pageHandlers.HandleDashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("POST /api/analyze", s.apiHandlers.HandleAnalyze)
	s.mux.HandleFunc("GET /api/reports", s.apiHandlers.HandleListReports)
	s.mux.HandleFunc("GET /api/reports/{month}", s.apiHandlers.HandleMonthlyReport)

	// Datastar SSE endpoints
	s.mux.HandleFunc("POST /sse/analyze", s.sseHandlers.HandleAnalyze)
	s.mux.HandleFunc("GET /sse/reports/{month}", s.sseHandlers.HandleMonthlyReport)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
