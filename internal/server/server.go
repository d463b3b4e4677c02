// Package server exposes the compensation engine over HTTP. The server is a
// thin presentation wrapper: it decodes raw input, hands it to the
// normalizer and engine, and renders the ordered metric cards. Computations
// are independent and the reference store is read-only, so no locking is
// involved.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compintel/ratecard/internal/engine"
	"github.com/compintel/ratecard/internal/profile"
	"github.com/compintel/ratecard/internal/refdata"
	"github.com/compintel/ratecard/pkg/output"
	"github.com/compintel/ratecard/pkg/presenter"
)

// Server is the HTTP front-end over the compensation engine.
type Server struct {
	router      *chi.Mux
	server      *http.Server
	logger      *zap.Logger
	store       *refdata.Store
	maxBodySize int64
	version     string
}

// New constructs the server. The reference store must be validated before
// the first request is served.
func New(cfg *Config, logger *zap.Logger, store *refdata.Store, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	s := &Server{
		router:      chi.NewRouter(),
		logger:      logger,
		store:       store,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/compute", s.handleCompute)
		r.Get("/version", s.handleVersion)
		r.Get("/glossary", s.handleGlossary)

		r.Route("/reference", func(r chi.Router) {
			r.Get("/locations", s.handleLocations)
			r.Get("/grades", s.handleGrades)
			r.Get("/workdays", s.handleWorkdays)
		})
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server",
		zap.String("op", "server.Start"),
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type computeResponse struct {
	ComputationID string               `json:"computationId"`
	Duration      string               `json:"duration"`
	Profile       profile.Profile      `json:"profile"`
	Currency      refdata.CurrencyInfo `json:"currency"`
	Result        engine.Result        `json:"result"`
	Metrics       []presenter.Metric   `json:"metrics"`
	CSV           string               `json:"csv"`
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if s.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBodySize)
	}

	var raw profile.RawInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "server.handleCompute")
		return
	}

	resolved := profile.Normalize(raw, s.store)
	result := engine.Compute(resolved)
	metrics := presenter.Metrics(result, resolved.Currency)
	elapsed := time.Since(start)

	response := computeResponse{
		ComputationID: uuid.New().String(),
		Duration:      elapsed.String(),
		Profile:       resolved.Profile,
		Currency:      resolved.Currency,
		Result:        result,
		Metrics:       metrics,
		CSV:           output.CsvString(metrics),
	}

	s.logger.Info("computation served",
		zap.String("op", "server.handleCompute"),
		zap.String("computationId", response.ComputationID),
		zap.String("location", string(resolved.Location)),
		zap.String("grade", string(resolved.Grade)),
		zap.Bool("override", resolved.HasOverride()),
		zap.Bool("degenerateMargin", result.DegenerateMargin),
		zap.Duration("duration", elapsed),
	)

	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	options := s.store.Locations()

	type locationEntry struct {
		refdata.LocationOption
		Currency refdata.CurrencyInfo `json:"currency"`
		Workdays int                  `json:"annualWorkdays"`
	}

	entries := make([]locationEntry, 0, len(options))
	for _, opt := range options {
		currency, err := s.store.CurrencyFor(opt.Code)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleLocations")
			return
		}
		workdays, err := s.store.WorkdaysFor(opt.Code)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleLocations")
			return
		}
		entries = append(entries, locationEntry{LocationOption: opt, Currency: currency, Workdays: workdays})
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{"locations": entries})
}

func (s *Server) handleGrades(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"grades": s.store.OfferedGrades()})
}

// handleWorkdays serves the location change side-channel: the presentation
// layer re-queries workdays whenever the location selection changes.
func (s *Server) handleWorkdays(w http.ResponseWriter, r *http.Request) {
	loc := refdata.LocationCode(r.URL.Query().Get("location"))
	workdays, err := s.store.WorkdaysFor(loc)
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error(), "server.handleWorkdays")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"location":       loc,
		"annualWorkdays": workdays,
	})
}

func (s *Server) handleGlossary(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries":     presenter.Glossary(),
		"assumptions": presenter.Assumptions(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string, op string) {
	s.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
