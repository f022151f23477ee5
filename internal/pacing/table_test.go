package pacing

import "testing"

// TestPacesZoneOrdering verifies that for every VDOT in the domain the five
// zones are strictly ordered slowest to fastest: E > M > T > I > R.
func TestPacesZoneOrdering(t *testing.T) {
	for v := VDOTMin; v <= VDOTMax; v++ {
		p := Paces(v)
		if !(p.Easy > p.Marathon && p.Marathon > p.Threshold &&
			p.Threshold > p.Interval && p.Interval > p.Repetition) {
			t.Errorf("Paces(%d) zone ordering broken: %+v", v, p)
		}
	}
}

// TestPacesClamping verifies out-of-range scores saturate at the table
// boundaries instead of failing.
func TestPacesClamping(t *testing.T) {
	if got := Paces(10).VDOT; got != 30 {
		t.Errorf("Paces(10).VDOT = %d, want 30", got)
	}
	if got := Paces(100).VDOT; got != 85 {
		t.Errorf("Paces(100).VDOT = %d, want 85", got)
	}
	if Paces(10) != Paces(30) {
		t.Errorf("Paces(10) = %+v, want the VDOT 30 row %+v", Paces(10), Paces(30))
	}
	if Paces(100) != Paces(85) {
		t.Errorf("Paces(100) = %+v, want the VDOT 85 row %+v", Paces(100), Paces(85))
	}
}

// TestPacesVDOT50 pins the exact tabulated row for VDOT 50 as a literal
// regression check.
func TestPacesVDOT50(t *testing.T) {
	want := TrainingPaces{VDOT: 50, Easy: 316, Marathon: 287, Threshold: 269, Interval: 248, Repetition: 230}
	if got := Paces(50); got != want {
		t.Errorf("Paces(50) = %+v, want %+v", got, want)
	}
}

// TestPacesMonotonic verifies higher fitness never produces a slower pace
// in any zone, including interpolated scores.
func TestPacesMonotonic(t *testing.T) {
	prev := Paces(VDOTMin)
	for v := VDOTMin + 1; v <= VDOTMax; v++ {
		cur := Paces(v)
		if cur.Easy > prev.Easy || cur.Marathon > prev.Marathon ||
			cur.Threshold > prev.Threshold || cur.Interval > prev.Interval ||
			cur.Repetition > prev.Repetition {
			t.Errorf("Paces(%d) = %+v slower than Paces(%d) = %+v", v, cur, v-1, prev)
		}
		prev = cur
	}
}

// TestPacesInterpolated verifies an off-row score lies between its
// bracketing rows in every field.
func TestPacesInterpolated(t *testing.T) {
	lo, mid, hi := Paces(48), Paces(49), Paces(50)
	check := func(name string, a, b, c int) {
		if !(a >= b && b >= c) {
			t.Errorf("%s: interpolated %d not between %d and %d", name, b, a, c)
		}
	}
	check("easy", lo.Easy, mid.Easy, hi.Easy)
	check("marathon", lo.Marathon, mid.Marathon, hi.Marathon)
	check("threshold", lo.Threshold, mid.Threshold, hi.Threshold)
	check("interval", lo.Interval, mid.Interval, hi.Interval)
	check("repetition", lo.Repetition, mid.Repetition, hi.Repetition)
}

// TestFormatPace covers the display format and the n/a sentinel.
func TestFormatPace(t *testing.T) {
	cases := []struct {
		sec  int
		want string
	}{
		{300, "5:00/km"},
		{316, "5:16/km"},
		{59, "0:59/km"},
		{605, "10:05/km"},
		{0, "n/a"},
		{-12, "n/a"},
	}
	for _, tc := range cases {
		if got := FormatPace(tc.sec); got != tc.want {
			t.Errorf("FormatPace(%d) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}

// TestFormatPaceRange verifies the combined range rendering.
func TestFormatPaceRange(t *testing.T) {
	if got := FormatPaceRange(300, 320); got != "5:00/km - 5:20/km" {
		t.Errorf("FormatPaceRange(300, 320) = %q", got)
	}
}

// TestResolvePace verifies label resolution, case-insensitivity, and the
// absent result for unknown labels.
func TestResolvePace(t *testing.T) {
	p := Paces(50)
	cases := []struct {
		label string
		want  int
	}{
		{"E", p.Easy},
		{"e", p.Easy},
		{"M", p.Marathon},
		{"T", p.Threshold},
		{"i", p.Interval},
		{"R", p.Repetition},
	}
	for _, tc := range cases {
		got, ok := ResolvePace(tc.label, 50)
		if !ok || got != tc.want {
			t.Errorf("ResolvePace(%q, 50) = (%d, %v), want (%d, true)", tc.label, got, ok, tc.want)
		}
	}

	for _, label := range []string{"X", "", "EM", "z"} {
		if _, ok := ResolvePace(label, 50); ok {
			t.Errorf("ResolvePace(%q, 50): expected absent result", label)
		}
	}
}

// TestPaceBand verifies band geometry: centred on the zone pace, easy band
// at least as wide as the threshold band at VDOT 50, and (0,0) for invalid
// labels.
func TestPaceBand(t *testing.T) {
	for _, label := range []string{"E", "M", "T", "I", "R"} {
		lo, hi := PaceBand(label, 50)
		centre, _ := ResolvePace(label, 50)
		if lo >= hi {
			t.Errorf("PaceBand(%q, 50) = (%d, %d): empty band", label, lo, hi)
		}
		if lo+hi != 2*centre {
			t.Errorf("PaceBand(%q, 50) = (%d, %d) not centred on %d", label, lo, hi, centre)
		}
	}

	eLo, eHi := PaceBand("E", 50)
	tLo, tHi := PaceBand("T", 50)
	if eHi-eLo < tHi-tLo {
		t.Errorf("easy band width %d narrower than threshold band width %d", eHi-eLo, tHi-tLo)
	}

	if lo, hi := PaceBand("X", 50); lo != 0 || hi != 0 {
		t.Errorf("PaceBand(\"X\", 50) = (%d, %d), want (0, 0)", lo, hi)
	}
}
