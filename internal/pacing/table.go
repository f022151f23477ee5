package pacing

import (
	"fmt"
	"math"
	"strings"
)

// VDOT domain covered by the pace table. Inputs outside this range saturate.
const (
	VDOTMin = 30
	VDOTMax = 85
)

// TrainingPaces holds the five Daniels training paces for a VDOT score,
// each in seconds per kilometre. Slower paces correspond to lower-intensity
// zones, so Easy > Marathon > Threshold > Interval > Repetition always holds.
type TrainingPaces struct {
	VDOT       int `json:"vdot"`
	Easy       int `json:"easy"`
	Marathon   int `json:"marathon"`
	Threshold  int `json:"threshold"`
	Interval   int `json:"interval"`
	Repetition int `json:"repetition"`
}

// paceRow is one tabulated VDOT entry.
type paceRow struct {
	vdot                                     int
	easy, marathon, threshold, interv, repet int
}

// paceTable tabulates paces every 2 VDOT points from 30 to 84, plus 85.
// Scores between rows are linearly interpolated per field.
var paceTable = []paceRow{
	{30, 472, 430, 404, 374, 347},
	{32, 449, 409, 384, 355, 330},
	{34, 429, 390, 366, 338, 314},
	{36, 410, 373, 350, 323, 300},
	{38, 393, 358, 335, 309, 287},
	{40, 377, 343, 322, 297, 276},
	{42, 363, 330, 310, 286, 265},
	{44, 350, 318, 298, 275, 255},
	{46, 338, 307, 288, 265, 246},
	{48, 327, 297, 278, 256, 238},
	{50, 316, 287, 269, 248, 230},
	{52, 306, 278, 261, 240, 223},
	{54, 297, 270, 253, 233, 216},
	{56, 288, 262, 245, 226, 210},
	{58, 280, 255, 239, 220, 204},
	{60, 273, 248, 232, 214, 198},
	{62, 266, 241, 226, 208, 193},
	{64, 259, 235, 220, 203, 188},
	{66, 253, 229, 215, 198, 184},
	{68, 247, 224, 210, 193, 179},
	{70, 241, 219, 205, 189, 175},
	{72, 235, 214, 200, 185, 171},
	{74, 230, 209, 196, 181, 167},
	{76, 225, 204, 192, 177, 164},
	{78, 221, 200, 188, 173, 161},
	{80, 216, 196, 184, 170, 157},
	{82, 212, 192, 180, 166, 154},
	{84, 208, 189, 177, 163, 151},
	{85, 206, 187, 175, 161, 150},
}

// Paces returns the five training paces for a VDOT score. Out-of-range
// scores are clamped to [VDOTMin, VDOTMax] rather than rejected. Scores
// falling between tabulated rows are interpolated linearly per field,
// rounded half away from zero.
func Paces(vdot int) TrainingPaces {
	if vdot < VDOTMin {
		vdot = VDOTMin
	}
	if vdot > VDOTMax {
		vdot = VDOTMax
	}

	lo := paceTable[0]
	for _, row := range paceTable {
		if row.vdot == vdot {
			return TrainingPaces{
				VDOT:       vdot,
				Easy:       row.easy,
				Marathon:   row.marathon,
				Threshold:  row.threshold,
				Interval:   row.interv,
				Repetition: row.repet,
			}
		}
		if row.vdot > vdot {
			frac := float64(vdot-lo.vdot) / float64(row.vdot-lo.vdot)
			return TrainingPaces{
				VDOT:       vdot,
				Easy:       lerp(lo.easy, row.easy, frac),
				Marathon:   lerp(lo.marathon, row.marathon, frac),
				Threshold:  lerp(lo.threshold, row.threshold, frac),
				Interval:   lerp(lo.interv, row.interv, frac),
				Repetition: lerp(lo.repet, row.repet, frac),
			}
		}
		lo = row
	}

	// Unreachable: the clamp guarantees a row at or above vdot exists.
	return TrainingPaces{
		VDOT:       lo.vdot,
		Easy:       lo.easy,
		Marathon:   lo.marathon,
		Threshold:  lo.threshold,
		Interval:   lo.interv,
		Repetition: lo.repet,
	}
}

// lerp interpolates between two tabulated pace values, rounding half away
// from zero (math.Round semantics, which the regression values depend on).
func lerp(lo, hi int, frac float64) int {
	return int(math.Round(float64(lo) + frac*float64(hi-lo)))
}

// FormatPace renders a sec/km pace as "M:SS/km", or "n/a" for
// non-positive input.
func FormatPace(secPerKm int) string {
	if secPerKm <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d:%02d/km", secPerKm/60, secPerKm%60)
}

// FormatPaceRange renders a low/high pace pair as a display range.
func FormatPaceRange(lo, hi int) string {
	return fmt.Sprintf("%s - %s", FormatPace(lo), FormatPace(hi))
}

// ResolvePace maps a Daniels pace label (E/M/T/I/R, case-insensitive) to
// the corresponding pace for the given VDOT. The second return is false
// for unknown or empty labels.
func ResolvePace(label string, vdot int) (int, bool) {
	p := Paces(vdot)
	switch strings.ToUpper(label) {
	case "E":
		return p.Easy, true
	case "M":
		return p.Marathon, true
	case "T":
		return p.Threshold, true
	case "I":
		return p.Interval, true
	case "R":
		return p.Repetition, true
	default:
		return 0, false
	}
}

// PaceBand returns a (low, high) target band around the pace for a label.
// E and M get a 3% margin, the faster zones 2%, with a 1 s/km minimum.
// Invalid labels yield (0, 0).
func PaceBand(label string, vdot int) (int, int) {
	centre, ok := ResolvePace(label, vdot)
	if !ok {
		return 0, 0
	}

	pct := 0.02
	switch strings.ToUpper(label) {
	case "E", "M":
		pct = 0.03
	}

	margin := int(math.Round(float64(centre) * pct))
	if margin < 1 {
		margin = 1
	}
	return centre - margin, centre + margin
}
