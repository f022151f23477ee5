// Package planner assembles week-by-week training plans from the phase
// split tables, the phase session templates and the prescription builder.
package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/claude/stridecoach/internal/catalog"
	"github.com/claude/stridecoach/internal/pacing"
	"github.com/claude/stridecoach/internal/prescription"
)

// Session is one prescribed slot in a plan week.
type Session struct {
	ID           uuid.UUID              `json:"id"`
	Week         int                    `json:"week"`
	Slot         int                    `json:"slot"`
	Phase        string                 `json:"phase"`
	WorkoutType  string                 `json:"workout_type"`
	DurationMin  int                    `json:"duration_min"`
	TargetPace   string                 `json:"target_pace"`
	PaceBandLow  int                    `json:"pace_band_low"`
	PaceBandHigh int                    `json:"pace_band_high"`
	PaceDisplay  string                 `json:"pace_display"`
	Structure    prescription.Structure `json:"structure"`
}

// Plan is a full generated training plan.
type Plan struct {
	ID              uuid.UUID `json:"id"`
	RaceGoal        string    `json:"race_goal"`
	Weeks           int       `json:"weeks"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	VDOT            int       `json:"vdot"`
	Sessions        []Session `json:"sessions"`
}

// defaultSplits is used when the race goal has no entry in the split
// table (or no goal is set at all).
var defaultSplits = catalog.PhaseSplits{BaseEnd: 0.40, BuildEnd: 0.75, PeakEnd: 0.90}

// baseDurations maps a workout category to its default session length in
// minutes before any weekly growth is applied.
var baseDurations = map[string]int{
	"Easy":           45,
	"Recovery":       30,
	"Long Run":       70,
	"Marathon Pace":  60,
	"Threshold":      50,
	"VO2max":         50,
	"Repetition":     45,
	"Hills":          45,
	"Fartlek":        45,
	"Strides":        35,
	"Race Pace":      50,
	"Benchmark":      40,
	"Taper":          30,
	"Cross-Training": 40,
}

// Build generates a plan. weeks and sessionsPerWeek must be positive; the
// VDOT is clamped by the pace table as usual.
func Build(raceGoal string, weeks, sessionsPerWeek, vdot int) (Plan, error) {
	if weeks <= 0 {
		return Plan{}, fmt.Errorf("plan weeks must be positive, got %d", weeks)
	}
	if sessionsPerWeek <= 0 {
		return Plan{}, fmt.Errorf("sessions per week must be positive, got %d", sessionsPerWeek)
	}

	splits, ok := catalog.SplitsFor(raceGoal)
	if !ok {
		splits = defaultSplits
	}

	plan := Plan{
		ID:              uuid.New(),
		RaceGoal:        raceGoal,
		Weeks:           weeks,
		SessionsPerWeek: sessionsPerWeek,
		VDOT:            pacing.Paces(vdot).VDOT,
	}

	for week := 1; week <= weeks; week++ {
		phase := phaseForWeek(week, weeks, splits)
		names := catalog.PhaseSessions(phase, sessionsPerWeek, raceGoal)

		for slot, name := range names {
			w, ok := catalog.Lookup(name)
			if !ok {
				return Plan{}, fmt.Errorf("template workout %q not in catalog", name)
			}

			duration := sessionDuration(w, phase, week)
			lo, hi := pacing.PaceBand(w.DanielsPace, plan.VDOT)

			plan.Sessions = append(plan.Sessions, Session{
				ID:           uuid.New(),
				Week:         week,
				Slot:         slot + 1,
				Phase:        phase,
				WorkoutType:  w.Name,
				DurationMin:  duration,
				TargetPace:   w.DanielsPace,
				PaceBandLow:  lo,
				PaceBandHigh: hi,
				PaceDisplay:  pacing.FormatPaceRange(lo, hi),
				Structure:    prescription.BuildStructure(w, duration, "outdoor"),
			})
		}
	}

	return plan, nil
}

// phaseForWeek cuts the plan at the split fractions; the remainder after
// PeakEnd is Taper.
func phaseForWeek(week, weeks int, splits catalog.PhaseSplits) string {
	frac := float64(week) / float64(weeks)
	switch {
	case frac <= splits.BaseEnd:
		return catalog.PhaseBase
	case frac <= splits.BuildEnd:
		return catalog.PhaseBuild
	case frac <= splits.PeakEnd:
		return catalog.PhasePeak
	default:
		return catalog.PhaseTaper
	}
}

// sessionDuration picks a session length by category, growing the long
// run through Base and Build and trimming everything in Taper.
func sessionDuration(w catalog.WorkoutType, phase string, week int) int {
	d, ok := baseDurations[w.Category]
	if !ok {
		d = 45
	}

	if w.Category == "Long Run" && (phase == catalog.PhaseBase || phase == catalog.PhaseBuild) {
		growth := (week - 1) * 5
		if growth > 40 {
			growth = 40
		}
		d += growth
	}

	if phase == catalog.PhaseTaper {
		d = d * 7 / 10
		if d < 20 {
			d = 20
		}
	}

	return d
}
