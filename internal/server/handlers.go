package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/claude/stridecoach/internal/catalog"
	"github.com/claude/stridecoach/internal/pacing"
	"github.com/claude/stridecoach/internal/prescription"
)

// pacesResponse augments the raw pace record with display strings and
// target bands per zone.
type pacesResponse struct {
	pacing.TrainingPaces
	Display map[string]string `json:"display"`
	Bands   map[string]string `json:"bands"`
}

func (s *Server) handlePaces(w http.ResponseWriter, r *http.Request) {
	vdot, err := strconv.Atoi(r.URL.Query().Get("vdot"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "vdot parameter required"})
		return
	}

	paces := pacing.Paces(vdot)
	resp := pacesResponse{
		TrainingPaces: paces,
		Display:       map[string]string{},
		Bands:         map[string]string{},
	}
	for label, sec := range map[string]int{
		"E": paces.Easy, "M": paces.Marathon, "T": paces.Threshold,
		"I": paces.Interval, "R": paces.Repetition,
	} {
		resp.Display[label] = pacing.FormatPace(sec)
		lo, hi := pacing.PaceBand(label, paces.VDOT)
		resp.Bands[label] = pacing.FormatPaceRange(lo, hi)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	distance := r.URL.Query().Get("distance")
	timeSec, err := strconv.ParseFloat(r.URL.Query().Get("time"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "time parameter required (seconds)"})
		return
	}

	vdot, err := pacing.VDOTFromRace(distance, timeSec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pacing.ErrUnknownDistance) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"distance":      distance,
		"time_sec":      timeSec,
		"vdot":          vdot,
		"fitness_label": pacing.FitnessLabel(vdot),
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	distance := r.URL.Query().Get("distance")
	vdot, err := strconv.ParseFloat(r.URL.Query().Get("vdot"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "vdot parameter required"})
		return
	}

	predicted, err := pacing.PredictRaceTime(vdot, distance)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pacing.ErrUnknownDistance) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"distance":           distance,
		"vdot":               vdot,
		"predicted_time_sec": predicted,
	})
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout name"})
		return
	}

	workout, ok := catalog.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// handleListPhases returns the periodization phases with their generic
// priority templates, for plan-builder UIs.
func (s *Server) handleListPhases(w http.ResponseWriter, r *http.Request) {
	type phaseInfo struct {
		Phase    string   `json:"phase"`
		Template []string `json:"template"`
	}
	resp := make([]phaseInfo, 0, len(catalog.Phases()))
	for _, phase := range catalog.Phases() {
		resp = append(resp, phaseInfo{Phase: phase, Template: catalog.PhaseTemplate(phase)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePhaseSessions(w http.ResponseWriter, r *http.Request) {
	phase := r.URL.Query().Get("phase")
	if phase == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "phase parameter required"})
		return
	}

	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "count parameter required"})
		return
	}

	raceGoal := r.URL.Query().Get("race_goal")
	writeJSON(w, http.StatusOK, map[string]any{
		"phase":     phase,
		"race_goal": raceGoal,
		"sessions":  catalog.PhaseSessions(phase, count, raceGoal),
	})
}

// prescriptionRequest is the body for POST /api/v1/prescriptions.
type prescriptionRequest struct {
	WorkoutType string `json:"workout_type"`
	DurationMin int    `json:"duration_min"`
	Environment string `json:"environment"`
}

func (s *Server) handleBuildPrescription(w http.ResponseWriter, r *http.Request) {
	var req prescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workout, ok := catalog.Lookup(req.WorkoutType)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown workout type " + strconv.Quote(req.WorkoutType)})
		return
	}

	env := req.Environment
	if env == "" {
		env = "outdoor"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"structure":   prescription.BuildStructure(workout, req.DurationMin, env),
		"targets":     prescription.BuildTargets(workout),
		"progression": prescription.BuildProgression(workout),
		"regression":  prescription.BuildRegression(workout),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
