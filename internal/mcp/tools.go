package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/stridecoach/internal/catalog"
	"github.com/claude/stridecoach/internal/pacing"
	"github.com/claude/stridecoach/internal/prescription"
)

// --- Tool definitions ---

var toolGetTrainingPaces = mcp.NewTool("get_training_paces",
	mcp.WithDescription("Get the five Daniels training paces (E/M/T/I/R, seconds per km) for a VDOT score, with formatted displays and target bands. Scores outside 30-85 are clamped."),
	mcp.WithNumber("vdot", mcp.Required(), mcp.Description("VDOT fitness score (30-85)")),
)

var toolEstimateVDOT = mcp.NewTool("estimate_vdot",
	mcp.WithDescription("Estimate a VDOT fitness score from a race result."),
	mcp.WithString("distance", mcp.Required(), mcp.Description("Race distance label"), mcp.Enum("800m", "Mile", "3K", "5K", "10K", "15K", "Half Marathon", "Marathon")),
	mcp.WithNumber("time_sec", mcp.Required(), mcp.Description("Finish time in seconds")),
)

var toolPredictRaceTime = mcp.NewTool("predict_race_time",
	mcp.WithDescription("Predict the finish time for a race distance given a VDOT score."),
	mcp.WithNumber("vdot", mcp.Required(), mcp.Description("VDOT fitness score")),
	mcp.WithString("distance", mcp.Required(), mcp.Description("Race distance label"), mcp.Enum("800m", "Mile", "3K", "5K", "10K", "15K", "Half Marathon", "Marathon")),
)

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List the workout catalog: name, category, intent, primary pace, phase affinity and RPE range for every workout type."),
)

var toolGetWorkoutType = mcp.NewTool("get_workout_type",
	mcp.WithDescription("Get one catalog workout type in full, including interval blocks and progression/regression rules."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exact workout name, e.g. 'VO2max Intervals'")),
)

var toolGetPhaseSessions = mcp.NewTool("get_phase_sessions",
	mcp.WithDescription("Select the priority-ordered workout names for one week of a training phase, optionally specialized by race goal."),
	mcp.WithString("phase", mcp.Required(), mcp.Description("Training phase"), mcp.Enum("Base", "Build", "Peak", "Taper", "Recovery")),
	mcp.WithNumber("sessions_per_week", mcp.Required(), mcp.Description("How many sessions to select")),
	mcp.WithString("race_goal", mcp.Description("Race goal distance (5K, 10K, Half Marathon, Marathon). Optional.")),
)

var toolBuildPrescription = mcp.NewTool("build_prescription",
	mcp.WithDescription("Build a structured session prescription (warmup/main_set/cooldown blocks, targets, progression and regression rules) for a workout type and duration."),
	mcp.WithString("workout_type", mcp.Required(), mcp.Description("Exact catalog workout name")),
	mcp.WithNumber("duration_min", mcp.Required(), mcp.Description("Target session duration in minutes (floored at 20)")),
	mcp.WithString("environment", mcp.Description("Session environment. Defaults to 'outdoor'."), mcp.Enum("outdoor", "treadmill", "track")),
)

// --- Tool handlers ---

func (h *handlers) getTrainingPaces(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vdot := req.GetInt("vdot", 0)
	paces := pacing.Paces(vdot)

	display := map[string]string{}
	bands := map[string]string{}
	for label, sec := range map[string]int{
		"E": paces.Easy, "M": paces.Marathon, "T": paces.Threshold,
		"I": paces.Interval, "R": paces.Repetition,
	} {
		display[label] = pacing.FormatPace(sec)
		lo, hi := pacing.PaceBand(label, paces.VDOT)
		bands[label] = pacing.FormatPaceRange(lo, hi)
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"paces":   paces,
		"display": display,
		"bands":   bands,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) estimateVDOT(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	distance := req.GetString("distance", "")
	timeSec := req.GetFloat("time_sec", 0)

	vdot, err := pacing.VDOTFromRace(distance, timeSec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"vdot":          vdot,
		"fitness_label": pacing.FitnessLabel(vdot),
		"paces":         pacing.Paces(int(vdot + 0.5)),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) predictRaceTime(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vdot := req.GetFloat("vdot", 0)
	distance := req.GetString("distance", "")

	predicted, err := pacing.PredictRaceTime(vdot, distance)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"distance":           distance,
		"vdot":               vdot,
		"predicted_time_sec": predicted,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type summary struct {
		Name          string           `json:"name"`
		Category      string           `json:"category"`
		Intent        string           `json:"intent"`
		DanielsPace   string           `json:"daniels_pace"`
		PhaseAffinity []string         `json:"phase_affinity"`
		RPE           catalog.RPERange `json:"rpe_range"`
	}

	var out []summary
	for _, w := range catalog.All() {
		out = append(out, summary{
			Name:          w.Name,
			Category:      w.Category,
			Intent:        w.Intent,
			DanielsPace:   w.DanielsPace,
			PhaseAffinity: w.PhaseAffinity,
			RPE:           w.RPE,
		})
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutType(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	w, ok := catalog.Lookup(name)
	if !ok {
		return mcp.NewToolResultError("unknown workout type: " + name), nil
	}

	result, err := mcp.NewToolResultJSON(w)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPhaseSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phase := req.GetString("phase", "")
	if strings.TrimSpace(phase) == "" {
		return mcp.NewToolResultError("phase parameter is required"), nil
	}
	count := req.GetInt("sessions_per_week", 0)
	raceGoal := req.GetString("race_goal", "")

	result, err := mcp.NewToolResultJSON(map[string]any{
		"phase":     phase,
		"race_goal": raceGoal,
		"sessions":  catalog.PhaseSessions(phase, count, raceGoal),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) buildPrescription(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("workout_type", "")
	w, ok := catalog.Lookup(name)
	if !ok {
		return mcp.NewToolResultError("unknown workout type: " + name), nil
	}

	duration := req.GetInt("duration_min", 0)
	env := req.GetString("environment", "outdoor")

	result, err := mcp.NewToolResultJSON(map[string]any{
		"structure":   prescription.BuildStructure(w, duration, env),
		"targets":     prescription.BuildTargets(w),
		"progression": prescription.BuildProgression(w),
		"regression":  prescription.BuildRegression(w),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
