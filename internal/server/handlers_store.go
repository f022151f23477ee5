package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/stridecoach/internal/models"
	"github.com/claude/stridecoach/internal/pacing"
	"github.com/claude/stridecoach/internal/planner"
)

type createAthleteRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	VDOT            int    `json:"vdot"`
	RaceGoal        string `json:"race_goal"`
	SessionsPerWeek int    `json:"sessions_per_week"`
}

func (s *Server) handleCreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req createAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	row := models.AthleteRow{
		ID:              uuid.New(),
		Name:            req.Name,
		Email:           req.Email,
		VDOT:            pacing.Paces(req.VDOT).VDOT,
		RaceGoal:        req.RaceGoal,
		SessionsPerWeek: req.SessionsPerWeek,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.db.InsertAthlete(r.Context(), row); err != nil {
		s.log.Error("create athlete", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListAthletes(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.ListAthletes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	athlete, err := s.db.GetAthlete(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "athlete not found"})
		return
	}
	writeJSON(w, http.StatusOK, athlete)
}

type submitRaceRequest struct {
	DistanceLabel string    `json:"distance_label"`
	TimeSec       float64   `json:"time_sec"`
	RaceDate      time.Time `json:"race_date"`
}

// handleSubmitRace stores a race result, re-estimates the athlete's VDOT
// and persists the rounded score on the athlete record.
func (s *Server) handleSubmitRace(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req submitRaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	vdot, err := pacing.VDOTFromRace(req.DistanceLabel, req.TimeSec)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	raceDate := req.RaceDate
	if raceDate.IsZero() {
		raceDate = time.Now().UTC()
	}

	row := models.RaceResultRow{
		ID:            uuid.New(),
		AthleteID:     id,
		DistanceLabel: req.DistanceLabel,
		TimeSec:       req.TimeSec,
		EstimatedVDOT: vdot,
		RaceDate:      raceDate,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.db.InsertRaceResult(r.Context(), row); err != nil {
		s.log.Error("insert race result", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.UpdateAthleteVDOT(r.Context(), id, int(vdot+0.5)); err != nil {
		s.log.Warn("update athlete vdot", "athlete", id, "error", err)
	}

	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListRaces(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rows, err := s.db.QueryRaceResults(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type createLogRequest struct {
	WorkoutType string    `json:"workout_type"`
	DurationMin int       `json:"duration_min"`
	DistanceKm  float64   `json:"distance_km"`
	RPE         int       `json:"rpe"`
	Readiness   float64   `json:"readiness"`
	PainFlag    bool      `json:"pain_flag"`
	Notes       string    `json:"notes"`
	LoggedAt    time.Time `json:"logged_at"`
}

func (s *Server) handleCreateLog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req createLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.RPE < 0 || req.RPE > 10 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rpe must be 0-10"})
		return
	}

	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}

	row := models.TrainingLogRow{
		ID:          uuid.New(),
		AthleteID:   id,
		WorkoutType: req.WorkoutType,
		DurationMin: req.DurationMin,
		DistanceKm:  req.DistanceKm,
		RPE:         req.RPE,
		Readiness:   req.Readiness,
		PainFlag:    req.PainFlag,
		Notes:       req.Notes,
		LoggedAt:    loggedAt,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.db.InsertTrainingLog(r.Context(), row); err != nil {
		s.log.Error("insert training log", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	end := time.Now().UTC()
	start := end.AddDate(0, -3, 0)
	rows, err := s.db.QueryTrainingLogs(r.Context(), id, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type generatePlanRequest struct {
	AthleteID       uuid.UUID `json:"athlete_id"`
	RaceGoal        string    `json:"race_goal"`
	Weeks           int       `json:"weeks"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	VDOT            int       `json:"vdot"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	plan, err := planner.Build(req.RaceGoal, req.Weeks, req.SessionsPerWeek, req.VDOT)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.InsertPlan(r.Context(), req.AthleteID, plan); err != nil {
		s.log.Error("insert plan", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rows, err := s.db.ListPlans(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	detail, err := s.db.GetPlan(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// parseID extracts the {id} URL parameter as a UUID, writing the error
// response itself on failure.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ID"})
		return uuid.UUID{}, false
	}
	return id, true
}
