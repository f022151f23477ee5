package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestServer builds a Server with no database; the calculator routes
// never touch storage.
func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, "test-key", log)
}

// TestHandlePaces verifies the pace lookup endpoint returns the exact
// VDOT 50 row with display strings.
func TestHandlePaces(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pacing/paces?vdot=50", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		VDOT    int               `json:"vdot"`
		Easy    int               `json:"easy"`
		Display map[string]string `json:"display"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.VDOT != 50 || resp.Easy != 316 {
		t.Errorf("vdot/easy = %d/%d, want 50/316", resp.VDOT, resp.Easy)
	}
	if resp.Display["E"] != "5:16/km" {
		t.Errorf("display E = %q, want 5:16/km", resp.Display["E"])
	}
}

// TestHandlePacesMissingParam verifies a 400 for a missing vdot.
func TestHandlePacesMissingParam(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pacing/paces", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleEstimate verifies the race estimate endpoint and the 400 for
// unknown distances.
func TestHandleEstimate(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pacing/estimate?distance=5K&time=1200", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		VDOT float64 `json:"vdot"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.VDOT < 48 || resp.VDOT > 52 {
		t.Errorf("vdot = %v, want in [48, 52]", resp.VDOT)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/pacing/estimate?distance=50K&time=1200", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown distance: status = %d, want 400", rec.Code)
	}
}

// TestHandleGetWorkout verifies catalog lookup including the 404 path.
func TestHandleGetWorkout(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/workouts/Tempo%20Run", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Name        string `json:"name"`
		DanielsPace string `json:"daniels_pace"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name != "Tempo Run" || resp.DanielsPace != "T" {
		t.Errorf("got %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/catalog/workouts/Nope", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown workout: status = %d, want 404", rec.Code)
	}
}

// TestHandleListPhases verifies the phase listing returns all five phases
// with non-empty templates.
func TestHandleListPhases(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/phases", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp []struct {
		Phase    string   `json:"phase"`
		Template []string `json:"template"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 5 {
		t.Fatalf("got %d phases, want 5", len(resp))
	}
	for _, p := range resp {
		if len(p.Template) == 0 {
			t.Errorf("phase %s has an empty template", p.Phase)
		}
	}
}

// TestHandlePhaseSessions verifies the selector endpoint truncates to the
// requested count.
func TestHandlePhaseSessions(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/sessions?phase=Build&count=4", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Sessions []string `json:"sessions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Sessions) != 4 {
		t.Errorf("got %d sessions, want 4", len(resp.Sessions))
	}
}

// TestHandleBuildPrescription verifies the prescription endpoint returns
// the version-3 structure with three blocks.
func TestHandleBuildPrescription(t *testing.T) {
	s := newTestServer()
	body := `{"workout_type":"VO2max Intervals","duration_min":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Structure struct {
			Version     int    `json:"version"`
			Environment string `json:"environment"`
			Blocks      []struct {
				Name string `json:"name"`
			} `json:"blocks"`
		} `json:"structure"`
		Progression map[string]any `json:"progression"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Structure.Version != 3 {
		t.Errorf("version = %d, want 3", resp.Structure.Version)
	}
	if resp.Structure.Environment != "outdoor" {
		t.Errorf("environment = %q, want default outdoor", resp.Structure.Environment)
	}
	if len(resp.Structure.Blocks) != 3 {
		t.Errorf("got %d blocks, want 3", len(resp.Structure.Blocks))
	}
	if len(resp.Progression) == 0 {
		t.Error("empty progression payload")
	}

	body = `{"workout_type":"Nope","duration_min":50}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", strings.NewReader(body))
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown workout: status = %d, want 404", rec.Code)
	}
}
