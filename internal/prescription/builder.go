// Package prescription turns catalog workout types into concrete,
// time-boxed session payloads. The JSON field names here are a wire
// contract consumed by the plan store and UI renderers; do not rename.
package prescription

import (
	"fmt"

	"github.com/claude/stridecoach/internal/catalog"
)

// Session length floor and warmup/cooldown sizing constants.
const (
	structureVersion  = 3
	minSessionMin     = 20
	minWarmupMin      = 8
	minMainMin        = 8
	longCooldownMin   = 8
	shortCooldownMin  = 6
	longSessionCutoff = 45
)

// Block is one ordered segment of a structured session.
type Block struct {
	Name         string                  `json:"name"`
	DurationMin  int                     `json:"duration_min"`
	TargetPace   string                  `json:"target_pace"`
	RPERange     catalog.RPERange        `json:"rpe_range"`
	Instructions string                  `json:"instructions"`
	Intervals    []catalog.IntervalBlock `json:"intervals"`
}

// Structure is a fully prescribed session: exactly three blocks in
// warmup, main_set, cooldown order.
type Structure struct {
	Version         int     `json:"version"`
	Environment     string  `json:"environment"`
	WorkoutType     string  `json:"workout_type"`
	DanielsPace     string  `json:"daniels_pace"`
	Blocks          []Block `json:"blocks"`
	FuelingHint     string  `json:"fueling_hint"`
	SuccessCriteria string  `json:"success_criteria"`
}

// Targets carries the primary pace/effort target plus fixed secondary
// form targets.
type Targets struct {
	Primary   PrimaryTarget   `json:"primary"`
	Secondary SecondaryTarget `json:"secondary"`
}

// PrimaryTarget is the pace label and effort range of the main set.
type PrimaryTarget struct {
	PaceLabel string           `json:"pace_label"`
	RPERange  catalog.RPERange `json:"rpe_range"`
}

// SecondaryTarget holds fixed form constants; these are not derived from
// the workout.
type SecondaryTarget struct {
	CadenceSPM [2]int `json:"cadence_spm"`
	Terrain    string `json:"terrain"`
}

// BuildStructure synthesizes the three-block session for a workout type
// and target duration. Durations below 20 minutes are floored, never
// rejected.
func BuildStructure(w catalog.WorkoutType, durationMin int, environment string) Structure {
	total := durationMin
	if total < minSessionMin {
		total = minSessionMin
	}

	warmup := total / 5
	if warmup < minWarmupMin {
		warmup = minWarmupMin
	}

	cooldown := shortCooldownMin
	if total >= longSessionCutoff {
		cooldown = longCooldownMin
	}

	main := total - warmup - cooldown
	if main < minMainMin {
		main = minMainMin
	}

	mainInstructions := w.Description
	intervals := []catalog.IntervalBlock{}
	if len(w.Intervals) > 0 {
		intervals = append(intervals, w.Intervals...)
		mainInstructions = w.Intervals[0].Description
	}

	fueling := "Hydrate before and after; no in-session fueling needed."
	if total > 60 {
		fueling = "Take 30-60g carbohydrate per hour after the first 60 minutes."
	}

	success := w.CoachingCues
	if success == "" {
		success = "Complete the prescribed blocks within the target pace band at the planned effort."
	}

	return Structure{
		Version:     structureVersion,
		Environment: environment,
		WorkoutType: w.Name,
		DanielsPace: w.DanielsPace,
		Blocks: []Block{
			{
				Name:         "warmup",
				DurationMin:  warmup,
				TargetPace:   "E",
				RPERange:     catalog.RPERange{Lo: 2, Hi: 3},
				Instructions: "Easy jogging building to the session effort; add 4 x 20 s strides before fast work.",
				Intervals:    []catalog.IntervalBlock{},
			},
			{
				Name:         "main_set",
				DurationMin:  main,
				TargetPace:   w.DanielsPace,
				RPERange:     w.RPE,
				Instructions: mainInstructions,
				Intervals:    intervals,
			},
			{
				Name:         "cooldown",
				DurationMin:  cooldown,
				TargetPace:   "E",
				RPERange:     catalog.RPERange{Lo: 2, Hi: 3},
				Instructions: "Easy jogging winding down to a walk; leave the session feeling loose.",
				Intervals:    []catalog.IntervalBlock{},
			},
		},
		FuelingHint:     fueling,
		SuccessCriteria: success,
	}
}

// BuildTargets returns the primary/secondary targets for a workout type.
func BuildTargets(w catalog.WorkoutType) Targets {
	return Targets{
		Primary: PrimaryTarget{
			PaceLabel: w.DanielsPace,
			RPERange:  w.RPE,
		},
		Secondary: SecondaryTarget{
			CadenceSPM: [2]int{170, 185},
			Terrain:    "flat_or_rolling",
		},
	}
}

// BuildProgression serializes a workout's progression rules under
// rule_1..rule_N keys, preserving order. Workouts without rules get a
// single default rule.
func BuildProgression(w catalog.WorkoutType) map[string]catalog.ProgressionRule {
	rules := w.Progressions
	if len(rules) == 0 {
		rules = []catalog.ProgressionRule{{
			Trigger: "Readiness >= 3.5 x2 sessions",
			Action:  "+5 min duration",
			Guard:   "",
		}}
	}

	out := make(map[string]catalog.ProgressionRule, len(rules))
	for i, r := range rules {
		out[fmt.Sprintf("rule_%d", i+1)] = r
	}
	return out
}

// BuildRegression mirrors BuildProgression for easing rules.
func BuildRegression(w catalog.WorkoutType) map[string]catalog.RegressionRule {
	rules := w.Regressions
	if len(rules) == 0 {
		rules = []catalog.RegressionRule{{
			Trigger:      "Readiness < 3.0 or pain flag",
			Action:       "Reduce volume 20%",
			FallbackType: "Easy Run",
		}}
	}

	out := make(map[string]catalog.RegressionRule, len(rules))
	for i, r := range rules {
		out[fmt.Sprintf("rule_%d", i+1)] = r
	}
	return out
}
