// Package models holds the row types shared between storage and the HTTP
// layer.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AthleteRow is a coached athlete record.
type AthleteRow struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	VDOT            int       `json:"vdot"`
	RaceGoal        string    `json:"race_goal"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	CreatedAt       time.Time `json:"created_at"`
}

// RaceResultRow is a recorded race performance; the stored VDOT is the
// estimate derived at submission time.
type RaceResultRow struct {
	ID            uuid.UUID `json:"id"`
	AthleteID     uuid.UUID `json:"athlete_id"`
	DistanceLabel string    `json:"distance_label"`
	TimeSec       float64   `json:"time_sec"`
	EstimatedVDOT float64   `json:"estimated_vdot"`
	RaceDate      time.Time `json:"race_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// TrainingLogRow is one completed (or skipped) session as reported by the
// athlete, including the readiness signals the progression rules key on.
type TrainingLogRow struct {
	ID          uuid.UUID `json:"id"`
	AthleteID   uuid.UUID `json:"athlete_id"`
	WorkoutType string    `json:"workout_type"`
	DurationMin int       `json:"duration_min"`
	DistanceKm  float64   `json:"distance_km"`
	RPE         int       `json:"rpe"`
	Readiness   float64   `json:"readiness"`
	PainFlag    bool      `json:"pain_flag"`
	Notes       string    `json:"notes"`
	LoggedAt    time.Time `json:"logged_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlanRow is a generated training plan header.
type PlanRow struct {
	ID              uuid.UUID `json:"id"`
	AthleteID       uuid.UUID `json:"athlete_id"`
	RaceGoal        string    `json:"race_goal"`
	Weeks           int       `json:"weeks"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	VDOT            int       `json:"vdot"`
	CreatedAt       time.Time `json:"created_at"`
}

// PlanSessionRow is one prescribed session within a stored plan. The
// structure JSON is the version-3 prescription payload.
type PlanSessionRow struct {
	ID            uuid.UUID       `json:"id"`
	PlanID        uuid.UUID       `json:"plan_id"`
	Week          int             `json:"week"`
	Slot          int             `json:"slot"`
	Phase         string          `json:"phase"`
	WorkoutType   string          `json:"workout_type"`
	DurationMin   int             `json:"duration_min"`
	StructureJSON json.RawMessage `json:"structure"`
}
