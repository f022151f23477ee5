// Package server exposes the pacing engine, workout catalog and plan
// store over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/stridecoach/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Calculator endpoints: pure functions over the engine, no storage.
	s.router.Route("/api/v1/pacing", func(r chi.Router) {
		r.Get("/paces", s.handlePaces)
		r.Get("/estimate", s.handleEstimate)
		r.Get("/predict", s.handlePredict)
	})
	s.router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{name}", s.handleGetWorkout)
		r.Get("/phases", s.handleListPhases)
		r.Get("/sessions", s.handlePhaseSessions)
	})
	s.router.Post("/api/v1/prescriptions", s.handleBuildPrescription)

	// Coaching records (API key required on mutations).
	s.router.Route("/api/v1/athletes", func(r chi.Router) {
		r.With(APIKeyAuth(s.apiKey)).Post("/", s.handleCreateAthlete)
		r.Get("/", s.handleListAthletes)
		r.Get("/{id}", s.handleGetAthlete)
		r.With(APIKeyAuth(s.apiKey)).Post("/{id}/races", s.handleSubmitRace)
		r.Get("/{id}/races", s.handleListRaces)
		r.With(APIKeyAuth(s.apiKey)).Post("/{id}/logs", s.handleCreateLog)
		r.Get("/{id}/logs", s.handleListLogs)
		r.Get("/{id}/plans", s.handleListPlans)
	})
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.With(APIKeyAuth(s.apiKey)).Post("/", s.handleGeneratePlan)
		r.Get("/{id}", s.handleGetPlan)
	})
}
