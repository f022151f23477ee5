package catalog

import "testing"

var validPaceLabels = map[string]bool{"E": true, "M": true, "T": true, "I": true, "R": true}

// TestRegistrySize verifies the catalog carries the full fixed set of
// workout types.
func TestRegistrySize(t *testing.T) {
	if Len() < 19 {
		t.Errorf("catalog has %d entries, want >= 19", Len())
	}
	if len(All()) != Len() {
		t.Errorf("All() returned %d entries, Len() = %d", len(All()), Len())
	}
}

// TestRegistryCategories verifies every mandated workout family is present.
func TestRegistryCategories(t *testing.T) {
	required := []string{
		"Easy Run", "Recovery Run",
		"Long Run", "Long Run with Marathon Finish",
		"Marathon Pace Run",
		"Tempo Run", "Cruise Intervals", "Threshold Repeats",
		"VO2max Intervals", "Short Intervals",
		"Repetitions", "Hill Repeats", "Fartlek", "Strides",
		"Race Pace Run", "Race Rehearsal", "Time Trial",
		"Taper Openers", "Cross-Training",
	}
	for _, name := range required {
		if _, ok := Lookup(name); !ok {
			t.Errorf("catalog missing required workout %q", name)
		}
	}
}

// TestRegistryEntryInvariants verifies per-entry constraints: valid pace
// label, non-empty phase affinity, sane RPE range, and well-formed
// interval blocks.
func TestRegistryEntryInvariants(t *testing.T) {
	knownPhases := map[string]bool{
		PhaseBase: true, PhaseBuild: true, PhasePeak: true,
		PhaseTaper: true, PhaseRecovery: true,
	}

	for _, w := range All() {
		if !validPaceLabels[w.DanielsPace] {
			t.Errorf("%s: invalid daniels_pace %q", w.Name, w.DanielsPace)
		}
		if len(w.PhaseAffinity) == 0 {
			t.Errorf("%s: empty phase affinity", w.Name)
		}
		for _, p := range w.PhaseAffinity {
			if !knownPhases[p] {
				t.Errorf("%s: unknown phase %q", w.Name, p)
			}
		}
		if !(1 <= w.RPE.Lo && w.RPE.Lo <= w.RPE.Hi && w.RPE.Hi <= 10) {
			t.Errorf("%s: invalid RPE range %+v", w.Name, w.RPE)
		}
		for i, b := range w.Intervals {
			if b.Reps <= 0 {
				t.Errorf("%s interval %d: non-positive reps %d", w.Name, i, b.Reps)
			}
			if b.WorkDurationMin <= 0 {
				t.Errorf("%s interval %d: non-positive work duration %v", w.Name, i, b.WorkDurationMin)
			}
			if !validPaceLabels[b.WorkPace] {
				t.Errorf("%s interval %d: invalid work pace %q", w.Name, i, b.WorkPace)
			}
			if b.RecoveryMin < 0 {
				t.Errorf("%s interval %d: negative recovery %v", w.Name, i, b.RecoveryMin)
			}
		}
		for _, r := range w.Regressions {
			if r.FallbackType != "" {
				if _, ok := Lookup(r.FallbackType); !ok {
					t.Errorf("%s: regression fallback %q not in catalog", w.Name, r.FallbackType)
				}
			}
		}
	}
}

// TestIntervalWorkoutsHaveIntervals verifies the interval-bearing families
// carry at least one block.
func TestIntervalWorkoutsHaveIntervals(t *testing.T) {
	intervalWorkouts := []string{
		"Cruise Intervals", "Threshold Repeats", "VO2max Intervals",
		"Short Intervals", "Repetitions", "Hill Repeats", "Fartlek",
		"Strides", "Taper Openers",
	}
	for _, name := range intervalWorkouts {
		w, ok := Lookup(name)
		if !ok {
			t.Errorf("missing %q", name)
			continue
		}
		if len(w.Intervals) == 0 {
			t.Errorf("%s: expected at least one interval block", name)
		}
	}
}

// TestLookupMiss verifies unknown names report absence, not an entry.
func TestLookupMiss(t *testing.T) {
	if _, ok := Lookup("Underwater Basket Run"); ok {
		t.Error("Lookup of unknown workout reported ok")
	}
	if _, ok := Lookup(""); ok {
		t.Error("Lookup of empty name reported ok")
	}
}
