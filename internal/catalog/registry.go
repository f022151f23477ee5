package catalog

import "sync"

var (
	registryOnce  sync.Once
	registry      map[string]WorkoutType
	registryNames []string
)

// Lookup returns the catalog entry with the given name. The second return
// is false when no such workout exists.
func Lookup(name string) (WorkoutType, bool) {
	buildRegistry()
	w, ok := registry[name]
	return w, ok
}

// All returns every catalog entry in registration order.
func All() []WorkoutType {
	buildRegistry()
	out := make([]WorkoutType, 0, len(registryNames))
	for _, name := range registryNames {
		out = append(out, registry[name])
	}
	return out
}

// Len reports the number of catalog entries.
func Len() int {
	buildRegistry()
	return len(registry)
}

func buildRegistry() {
	registryOnce.Do(func() {
		registry = make(map[string]WorkoutType)
		for _, w := range catalogEntries() {
			registry[w.Name] = w
			registryNames = append(registryNames, w.Name)
		}
	})
}

// catalogEntries defines the fixed workout catalog. The registry is built
// once at first use and never mutated afterwards.
func catalogEntries() []WorkoutType {
	allPhases := []string{PhaseBase, PhaseBuild, PhasePeak, PhaseTaper, PhaseRecovery}

	return []WorkoutType{
		{
			Name:          "Easy Run",
			Category:      "Easy",
			Intent:        "Aerobic base maintenance and recovery between quality days",
			EnergySystem:  "aerobic",
			DanielsPace:   "E",
			PhaseAffinity: allPhases,
			RPE:           RPERange{Lo: 2, Hi: 4},
			Progressions: []ProgressionRule{
				{Trigger: "Readiness >= 3.5 for 2 consecutive sessions", Action: "+10% duration", Guard: "Weekly volume increase <= 10%"},
			},
			Description:  "Continuous relaxed running at conversational effort.",
			CoachingCues: "Stay conversational; nose-breathing should feel possible on flats.",
		},
		{
			Name:          "Recovery Run",
			Category:      "Recovery",
			Intent:        "Promote circulation without adding training stress",
			EnergySystem:  "aerobic",
			DanielsPace:   "E",
			PhaseAffinity: allPhases,
			RPE:           RPERange{Lo: 1, Hi: 3},
			Regressions: []RegressionRule{
				{Trigger: "Readiness < 2.5", Action: "Replace with full rest day", FallbackType: "Cross-Training"},
			},
			Description:  "Very short, very easy jog the day after hard work.",
			CoachingCues: "Slower than it feels necessary; this run has no pace target worth chasing.",
		},
		{
			Name:          "Long Run",
			Category:      "Long Run",
			Intent:        "Extend aerobic endurance and fatigue resistance",
			EnergySystem:  "aerobic",
			DanielsPace:   "E",
			PhaseAffinity: []string{PhaseBase, PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 3, Hi: 5},
			Progressions: []ProgressionRule{
				{Trigger: "Completed 2 long runs at current duration with RPE <= 5", Action: "+10 min duration", Guard: "Long run <= 30% of weekly volume"},
			},
			Regressions: []RegressionRule{
				{Trigger: "RPE >= 7 before 75% of planned duration", Action: "Cut remaining distance, finish at E", FallbackType: "Easy Run"},
			},
			Description:  "Steady easy-pace run, the longest session of the week.",
			CoachingCues: "Even effort throughout; fuel every 40 minutes beyond the first hour.",
		},
		{
			Name:          "Long Run with Marathon Finish",
			Category:      "Long Run",
			Intent:        "Practice running goal pace on tired legs",
			EnergySystem:  "aerobic",
			DanielsPace:   "M",
			PhaseAffinity: []string{PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 4, Hi: 6},
			Intervals: []IntervalBlock{
				{Reps: 1, WorkDurationMin: 20, WorkPace: "M", RecoveryMin: 0, RecoveryPace: "E", Description: "Easy running, then close the final 20 minutes at marathon pace."},
			},
			Progressions: []ProgressionRule{
				{Trigger: "M-pace finish completed within pace band twice", Action: "+5 min at M pace", Guard: "Total M-pace segment <= 40 min"},
			},
			Description:  "Long run closing with a sustained marathon-pace segment.",
			CoachingCues: "Hold back early; the final segment should feel controlled, not raced.",
		},
		{
			Name:          "Marathon Pace Run",
			Category:      "Marathon Pace",
			Intent:        "Rehearse goal-race rhythm and fueling",
			EnergySystem:  "aerobic",
			DanielsPace:   "M",
			PhaseAffinity: []string{PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 4, Hi: 6},
			Intervals: []IntervalBlock{
				{Reps: 2, WorkDurationMin: 15, WorkPace: "M", RecoveryMin: 3, RecoveryPace: "E", Description: "2 x 15 min at marathon pace with 3 min easy float."},
			},
			Description:  "Sustained blocks at marathon pace inside an easy-run envelope.",
			CoachingCues: "Lock in rhythm within the first 2 minutes of each block; practice race fueling.",
		},
		{
			Name:          "Tempo Run",
			Category:      "Threshold",
			Intent:        "Raise the lactate threshold with a continuous comfortably-hard effort",
			EnergySystem:  "threshold",
			DanielsPace:   "T",
			PhaseAffinity: []string{PhaseBase, PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 6, Hi: 7},
			Progressions: []ProgressionRule{
				{Trigger: "Held T pace for full duration at RPE <= 7 twice", Action: "+5 min tempo duration", Guard: "Tempo segment <= 40 min"},
			},
			Regressions: []RegressionRule{
				{Trigger: "Pace fades > 5% in back half", Action: "Split into cruise intervals next time", FallbackType: "Cruise Intervals"},
			},
			Description:  "Continuous 20-30 minute effort at threshold pace.",
			CoachingCues: "Comfortably hard: you could speak a sentence, not hold a conversation.",
		},
		{
			Name:          "Cruise Intervals",
			Category:      "Threshold",
			Intent:        "Accumulate threshold time with short floats to keep form",
			EnergySystem:  "threshold",
			DanielsPace:   "T",
			PhaseAffinity: []string{PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 6, Hi: 7},
			Intervals: []IntervalBlock{
				{Reps: 4, WorkDurationMin: 8, WorkPace: "T", RecoveryMin: 1, RecoveryPace: "easy jog", Description: "4 x 8 min at threshold with 1 min jog recovery."},
			},
			Progressions: []ProgressionRule{
				{Trigger: "All reps within pace band for 2 sessions", Action: "+1 rep", Guard: "Total T time <= 40 min"},
			},
			Description:  "Broken threshold work: more total quality than a single tempo allows.",
			CoachingCues: "The recovery is a float, not a rest; keep moving.",
		},
		{
			Name:          "Threshold Repeats",
			Category:      "Threshold",
			Intent:        "Longer threshold repeats for well-trained runners",
			EnergySystem:  "threshold",
			DanielsPace:   "T",
			PhaseAffinity: []string{PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 6, Hi: 8},
			Intervals: []IntervalBlock{
				{Reps: 5, WorkDurationMin: 6, WorkPace: "T", RecoveryMin: 1.5, RecoveryPace: "easy jog", Description: "5 x 6 min at threshold with 90 s jog recovery."},
			},
			Description:  "Repeat blocks at threshold pace with short jog recoveries.",
			CoachingCues: "Same split every rep; the last should feel like the first, only harder.",
		},
		{
			Name:          "VO2max Intervals",
			Category:      "VO2max",
			Intent:        "Maximize time at or near VO2max",
			EnergySystem:  "aerobic power",
			DanielsPace:   "I",
			PhaseAffinity: []string{PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 8, Hi: 9},
			Intervals: []IntervalBlock{
				{Reps: 5, WorkDurationMin: 3, WorkPace: "I", RecoveryMin: 2.5, RecoveryPace: "easy jog", Description: "5 x 3 min at interval pace with 2:30 jog recovery."},
			},
			Progressions: []ProgressionRule{
				{Trigger: "Readiness >= 3.5 for 2 consecutive sessions", Action: "+1 rep", Guard: "Total I time <= 20 min"},
			},
			Regressions: []RegressionRule{
				{Trigger: "Unable to hold I pace past rep 3", Action: "Drop to 4 reps, lengthen recovery to 3 min", FallbackType: "Fartlek"},
			},
			Description:  "Classic 3-minute intervals at vVO2max pace.",
			CoachingCues: "Reach goal pace within 30 seconds of each rep; stop the session if form breaks.",
		},
		{
			Name:          "Short Intervals",
			Category:      "VO2max",
			Intent:        "VO2max stimulus in short reps for newer or returning runners",
			EnergySystem:  "aerobic power",
			DanielsPace:   "I",
			PhaseAffinity: []string{PhaseBase, PhaseBuild},
			RPE:           RPERange{Lo: 8, Hi: 9},
			Intervals: []IntervalBlock{
				{Reps: 10, WorkDurationMin: 1, WorkPace: "I", RecoveryMin: 1, RecoveryPace: "easy jog", Description: "10 x 1 min at interval pace with equal jog recovery."},
			},
			Description:  "One-minute reps at interval pace, equal recovery.",
			CoachingCues: "Short reps reward quick rhythm; do not sprint the first three.",
		},
		{
			Name:          "Repetitions",
			Category:      "Repetition",
			Intent:        "Speed and running economy at mile pace or faster",
			EnergySystem:  "anaerobic",
			DanielsPace:   "R",
			PhaseAffinity: []string{PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 8, Hi: 9},
			Intervals: []IntervalBlock{
				{Reps: 8, WorkDurationMin: 0.75, WorkPace: "R", RecoveryMin: 2, RecoveryPace: "walk/jog", Description: "8 x 45 s at repetition pace with full 2 min recovery."},
			},
			Description:  "Fast, fully-recovered reps focused on mechanics, not fitness.",
			CoachingCues: "Full recovery is the point; each rep should be fast AND relaxed.",
		},
		{
			Name:          "Hill Repeats",
			Category:      "Hills",
			Intent:        "Build strength and power with reduced impact",
			EnergySystem:  "anaerobic",
			DanielsPace:   "R",
			PhaseAffinity: []string{PhaseBase, PhaseBuild},
			RPE:           RPERange{Lo: 7, Hi: 9},
			Intervals: []IntervalBlock{
				{Reps: 8, WorkDurationMin: 1, WorkPace: "R", RecoveryMin: 2.5, RecoveryPace: "jog down", Description: "8 x 1 min uphill at hard effort, jog-down recovery."},
			},
			Progressions: []ProgressionRule{
				{Trigger: "Completed all reps with even effort for 2 sessions", Action: "+2 reps", Guard: "<= 12 reps total"},
			},
			Description:  "Uphill efforts at R-equivalent intensity; effort-based, not pace-based.",
			CoachingCues: "Drive the knees, run tall; walk the first 30 s of the descent.",
		},
		{
			Name:          "Fartlek",
			Category:      "Fartlek",
			Intent:        "Unstructured speed play bridging base and formal intervals",
			EnergySystem:  "mixed",
			DanielsPace:   "I",
			PhaseAffinity: []string{PhaseBase, PhaseBuild},
			RPE:           RPERange{Lo: 5, Hi: 8},
			Intervals: []IntervalBlock{
				{Reps: 6, WorkDurationMin: 2, WorkPace: "I", RecoveryMin: 2, RecoveryPace: "E", Description: "6 x 2 min surges at interval effort within a continuous run."},
			},
			Description:  "Continuous run with surges on feel.",
			CoachingCues: "Surge by effort, not by the watch; land every surge feeling you had one more.",
		},
		{
			Name:          "Strides",
			Category:      "Strides",
			Intent:        "Neuromuscular sharpening appended to easy running",
			EnergySystem:  "neuromuscular",
			DanielsPace:   "R",
			PhaseAffinity: allPhases,
			RPE:           RPERange{Lo: 5, Hi: 7},
			Intervals: []IntervalBlock{
				{Reps: 6, WorkDurationMin: 0.33, WorkPace: "R", RecoveryMin: 1, RecoveryPace: "walk", Description: "6 x 20 s smooth accelerations with full recovery."},
			},
			Description:  "Short relaxed accelerations to near-mile pace.",
			CoachingCues: "Build through each stride; never strain, never sprint.",
		},
		{
			Name:          "Race Pace Run",
			Category:      "Race Pace",
			Intent:        "Specific practice at goal race intensity",
			EnergySystem:  "race specific",
			DanielsPace:   "T",
			PhaseAffinity: []string{PhasePeak, PhaseTaper},
			RPE:           RPERange{Lo: 6, Hi: 8},
			Intervals: []IntervalBlock{
				{Reps: 3, WorkDurationMin: 10, WorkPace: "T", RecoveryMin: 2, RecoveryPace: "E", Description: "3 x 10 min at goal race effort with 2 min easy."},
			},
			Description:  "Blocks at goal race effort as the race approaches.",
			CoachingCues: "Rehearse everything: shoes, fuel, pacing discipline.",
		},
		{
			Name:          "Race Rehearsal",
			Category:      "Race Pace",
			Intent:        "Full dress rehearsal of race-day execution",
			EnergySystem:  "race specific",
			DanielsPace:   "M",
			PhaseAffinity: []string{PhasePeak},
			RPE:           RPERange{Lo: 5, Hi: 7},
			Intervals: []IntervalBlock{
				{Reps: 1, WorkDurationMin: 40, WorkPace: "M", RecoveryMin: 0, RecoveryPace: "E", Description: "40 min continuous at goal pace in race kit with race fueling."},
			},
			Description:  "Single long block at goal pace under race-day conditions.",
			CoachingCues: "Treat it as the race: same breakfast, same kit, same warmup.",
		},
		{
			Name:          "Time Trial",
			Category:      "Benchmark",
			Intent:        "Benchmark current fitness and recalibrate training paces",
			EnergySystem:  "race specific",
			DanielsPace:   "I",
			PhaseAffinity: []string{PhaseBase, PhaseBuild, PhasePeak},
			RPE:           RPERange{Lo: 9, Hi: 10},
			Intervals: []IntervalBlock{
				{Reps: 1, WorkDurationMin: 15, WorkPace: "I", RecoveryMin: 0, RecoveryPace: "E", Description: "Solo all-out effort over a measured course, roughly 3K-5K."},
			},
			Regressions: []RegressionRule{
				{Trigger: "Readiness < 3.0 on test day", Action: "Postpone 3-5 days", FallbackType: "Tempo Run"},
			},
			Description:  "All-out measured effort used to update the VDOT estimate.",
			CoachingCues: "Even pacing wins time trials; the first kilometre decides the result.",
		},
		{
			Name:          "Taper Openers",
			Category:      "Taper",
			Intent:        "Keep the legs sharp while shedding fatigue before the race",
			EnergySystem:  "neuromuscular",
			DanielsPace:   "R",
			PhaseAffinity: []string{PhaseTaper},
			RPE:           RPERange{Lo: 5, Hi: 6},
			Intervals: []IntervalBlock{
				{Reps: 4, WorkDurationMin: 0.5, WorkPace: "R", RecoveryMin: 1.5, RecoveryPace: "walk", Description: "4 x 30 s openers at repetition pace, full recovery."},
			},
			Description:  "A handful of short fast openers inside a short easy run.",
			CoachingCues: "Crisp, not hard; you should finish wanting more.",
		},
		{
			Name:          "Cross-Training",
			Category:      "Cross-Training",
			Intent:        "Aerobic stimulus without running impact",
			EnergySystem:  "aerobic",
			DanielsPace:   "E",
			PhaseAffinity: []string{PhaseBase, PhaseRecovery},
			RPE:           RPERange{Lo: 2, Hi: 4},
			Description:   "Bike, swim or elliptical at easy-run equivalent effort.",
			CoachingCues:  "Match easy-run effort, not easy-run heart rate numbers.",
		},
		{
			Name:          "Progression Run",
			Category:      "Easy",
			Intent:        "Finish-fast practice: patient start, strong close",
			EnergySystem:  "mixed",
			DanielsPace:   "T",
			PhaseAffinity: []string{PhaseBase, PhaseBuild},
			RPE:           RPERange{Lo: 4, Hi: 7},
			Description:   "Continuous run drifting from easy pace to threshold over the final third.",
			CoachingCues:  "The first half should feel too slow; earn the fast finish.",
		},
	}
}
