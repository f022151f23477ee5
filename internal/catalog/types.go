package catalog

// Training phases a workout can belong to.
const (
	PhaseBase     = "Base"
	PhaseBuild    = "Build"
	PhasePeak     = "Peak"
	PhaseTaper    = "Taper"
	PhaseRecovery = "Recovery"
)

// IntervalBlock is one repeated work/recovery unit within a main set.
// Durations are minutes; paces are Daniels labels (recovery may be free
// text like "easy jog", treated as E).
type IntervalBlock struct {
	Reps            int     `json:"reps"`
	WorkDurationMin float64 `json:"work_duration_min"`
	WorkPace        string  `json:"work_pace"`
	RecoveryMin     float64 `json:"recovery_duration_min"`
	RecoveryPace    string  `json:"recovery_pace"`
	Description     string  `json:"description"`
}

// ProgressionRule is an advisory trigger/action pair describing when and
// how to make a workout harder. Guard gates the action with an extra
// condition. The coaching-automation layer interprets these; this core
// only stores and serializes them.
type ProgressionRule struct {
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
	Guard   string `json:"guard"`
}

// RegressionRule is the easing counterpart: FallbackType names a catalog
// workout to substitute when the regression fires.
type RegressionRule struct {
	Trigger      string `json:"trigger"`
	Action       string `json:"action"`
	FallbackType string `json:"fallback_type"`
}

// RPERange is an inclusive perceived-exertion range on the 1-10 scale.
type RPERange struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// WorkoutType is a catalog entry: a named workout shape with its intent,
// target energy system, primary Daniels pace, phase affinity and the
// interval/progression payloads the prescription builder consumes.
// Entries are immutable once the registry is built.
type WorkoutType struct {
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Intent        string            `json:"intent"`
	EnergySystem  string            `json:"energy_system"`
	DanielsPace   string            `json:"daniels_pace"`
	PhaseAffinity []string          `json:"phase_affinity"`
	RPE           RPERange          `json:"rpe_range"`
	Intervals     []IntervalBlock   `json:"intervals,omitempty"`
	Progressions  []ProgressionRule `json:"progressions,omitempty"`
	Regressions   []RegressionRule  `json:"regressions,omitempty"`
	Description   string            `json:"description"`
	CoachingCues  string            `json:"coaching_cues"`
}
