package catalog

// PhaseSplits gives the cut points of a plan as fractions of its total
// length: weeks up to BaseEnd are Base, up to BuildEnd are Build, up to
// PeakEnd are Peak, and the remainder is Taper.
type PhaseSplits struct {
	BaseEnd  float64 `json:"base_end"`
	BuildEnd float64 `json:"build_end"`
	PeakEnd  float64 `json:"peak_end"`
}

// recoverySessions is shared by every distance table; the generic and
// per-distance Recovery entries are the same list by identity, never
// copied, since no caller mutates templates.
var recoverySessions = []string{"Recovery Run", "Easy Run", "Cross-Training"}

// phaseTemplates orders workout names by priority (most important first)
// for each phase. PhaseSessions truncates these to the weekly session count.
var phaseTemplates = map[string][]string{
	PhaseBase: {
		"Easy Run", "Long Run", "Strides", "Hill Repeats",
		"Tempo Run", "Recovery Run", "Cross-Training",
	},
	PhaseBuild: {
		"Tempo Run", "VO2max Intervals", "Long Run", "Easy Run",
		"Cruise Intervals", "Recovery Run", "Strides",
	},
	PhasePeak: {
		"Race Pace Run", "VO2max Intervals", "Threshold Repeats",
		"Long Run", "Easy Run", "Repetitions", "Recovery Run",
	},
	PhaseTaper: {
		"Taper Openers", "Race Pace Run", "Easy Run", "Strides", "Recovery Run",
	},
	PhaseRecovery: recoverySessions,
}

// distancePhaseTemplates overrides the generic tables for recognized race
// goals. A distance may cover only some phases; PhaseSessions falls back
// to the generic table for the rest.
var distancePhaseTemplates = map[string]map[string][]string{
	"5K": {
		PhaseBase: {
			"Easy Run", "Long Run", "Short Intervals", "Strides",
			"Hill Repeats", "Recovery Run",
		},
		PhaseBuild: {
			"VO2max Intervals", "Tempo Run", "Repetitions", "Long Run",
			"Easy Run", "Recovery Run",
		},
		PhasePeak: {
			"VO2max Intervals", "Race Pace Run", "Repetitions", "Time Trial",
			"Easy Run", "Recovery Run",
		},
		PhaseRecovery: recoverySessions,
	},
	"10K": {
		PhaseBuild: {
			"Cruise Intervals", "VO2max Intervals", "Long Run", "Easy Run",
			"Fartlek", "Recovery Run",
		},
		PhasePeak: {
			"Race Pace Run", "VO2max Intervals", "Threshold Repeats",
			"Long Run", "Easy Run", "Recovery Run",
		},
		PhaseRecovery: recoverySessions,
	},
	"Half Marathon": {
		PhaseBuild: {
			"Tempo Run", "Cruise Intervals", "Long Run", "Easy Run",
			"VO2max Intervals", "Recovery Run",
		},
		PhasePeak: {
			"Race Pace Run", "Threshold Repeats", "Long Run with Marathon Finish",
			"Easy Run", "Strides", "Recovery Run",
		},
		PhaseRecovery: recoverySessions,
	},
	"Marathon": {
		PhaseBase: {
			"Easy Run", "Long Run", "Strides", "Tempo Run",
			"Hill Repeats", "Recovery Run", "Cross-Training",
		},
		PhaseBuild: {
			"Marathon Pace Run", "Long Run with Marathon Finish", "Tempo Run",
			"Easy Run", "Cruise Intervals", "Recovery Run",
		},
		PhasePeak: {
			"Race Rehearsal", "Long Run with Marathon Finish", "Marathon Pace Run",
			"Threshold Repeats", "Easy Run", "Recovery Run",
		},
		PhaseTaper: {
			"Taper Openers", "Marathon Pace Run", "Easy Run", "Strides", "Recovery Run",
		},
		PhaseRecovery: recoverySessions,
	},
}

// distancePhaseSplits maps a race goal to its phase cut fractions. The
// plan builder consumes these; the remainder after PeakEnd is Taper.
var distancePhaseSplits = map[string]PhaseSplits{
	"5K":            {BaseEnd: 0.40, BuildEnd: 0.75, PeakEnd: 0.90},
	"10K":           {BaseEnd: 0.40, BuildEnd: 0.75, PeakEnd: 0.90},
	"Half Marathon": {BaseEnd: 0.45, BuildEnd: 0.75, PeakEnd: 0.90},
	"Marathon":      {BaseEnd: 0.50, BuildEnd: 0.80, PeakEnd: 0.92},
}

// PhaseSessions returns the workout names for one week of a phase, in
// priority order, truncated to sessionsPerWeek (never padded). A
// recognized raceGoal selects the distance-specific template; a missing
// phase in that table falls back to the generic template, and an unknown
// phase falls back to the Base template.
func PhaseSessions(phase string, sessionsPerWeek int, raceGoal string) []string {
	var template []string

	if byPhase, ok := distancePhaseTemplates[raceGoal]; ok {
		template = byPhase[phase]
	}
	if template == nil {
		template = phaseTemplates[phase]
	}
	if template == nil {
		template = phaseTemplates[PhaseBase]
	}

	n := sessionsPerWeek
	if n > len(template) {
		n = len(template)
	}
	if n < 0 {
		n = 0
	}

	out := make([]string, n)
	copy(out, template[:n])
	return out
}

// SplitsFor returns the phase cut fractions for a race goal.
func SplitsFor(raceGoal string) (PhaseSplits, bool) {
	s, ok := distancePhaseSplits[raceGoal]
	return s, ok
}

// PhaseTemplate exposes the generic priority list for a phase, mainly for
// validation and introspection endpoints.
func PhaseTemplate(phase string) []string {
	return phaseTemplates[phase]
}

// Phases lists the training phases in periodization order.
func Phases() []string {
	return []string{PhaseBase, PhaseBuild, PhasePeak, PhaseTaper, PhaseRecovery}
}

// RaceGoals lists the race distances with specialized templates.
func RaceGoals() []string {
	return []string{"5K", "10K", "Half Marathon", "Marathon"}
}
