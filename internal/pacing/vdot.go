package pacing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Race distances in metres for the named events VDOTFromRace accepts.
var raceDistances = map[string]float64{
	"800m":          800,
	"Mile":          1609.34,
	"3K":            3000,
	"5K":            5000,
	"10K":           10000,
	"15K":           15000,
	"Half Marathon": 21097.5,
	"Marathon":      42195,
}

// raceDistanceOrder lists the valid labels shortest-first for error messages.
var raceDistanceOrder = []string{
	"800m", "Mile", "3K", "5K", "10K", "15K", "Half Marathon", "Marathon",
}

// ErrUnknownDistance is returned by VDOTFromRace for unrecognized
// distance labels.
var ErrUnknownDistance = errors.New("unknown race distance")

// vdotFloor is returned for physically meaningless inputs instead of an
// error: a zero-distance or zero-time "race" has no fitness signal.
const vdotFloor = 30.0

// EstimateVDOT derives a VDOT score from a race distance (metres) and
// finish time (seconds) using Daniels' velocity, VO2-cost and
// percent-of-max formulas. Non-positive inputs return the 30.0 floor.
func EstimateVDOT(distanceM, timeSec float64) float64 {
	if distanceM <= 0 || timeSec <= 0 {
		return vdotFloor
	}

	tMin := timeSec / 60
	v := distanceM / tMin // metres per minute

	vo2 := -4.60 + 0.182258*v + 0.000104*v*v
	pct := 0.8 + 0.1894393*math.Exp(-0.012778*tMin) + 0.2989558*math.Exp(-0.1932605*tMin)
	if pct <= 0 {
		return vdotFloor
	}

	return math.Round(vo2/pct*10) / 10
}

// VDOTFromRace resolves a named race distance and estimates VDOT from the
// finish time. Unknown labels fail with ErrUnknownDistance.
func VDOTFromRace(distanceLabel string, timeSec float64) (float64, error) {
	meters, ok := raceDistances[distanceLabel]
	if !ok {
		return 0, fmt.Errorf("%w %q (valid: %s)",
			ErrUnknownDistance, distanceLabel, strings.Join(raceDistanceOrder, ", "))
	}
	return EstimateVDOT(meters, timeSec), nil
}

// RaceDistanceMeters resolves a named race distance to metres.
func RaceDistanceMeters(distanceLabel string) (float64, bool) {
	m, ok := raceDistances[distanceLabel]
	return m, ok
}

// RaceDistances returns the valid race distance labels, shortest first.
func RaceDistances() []string {
	out := make([]string, len(raceDistanceOrder))
	copy(out, raceDistanceOrder)
	return out
}

// PredictRaceTime estimates the finish time (seconds) a runner with the
// given VDOT would post over a named distance, by bisecting EstimateVDOT
// over time. The estimator is strictly decreasing in time for a fixed
// distance, so bisection converges to within a second.
func PredictRaceTime(vdot float64, distanceLabel string) (int, error) {
	meters, ok := raceDistances[distanceLabel]
	if !ok {
		return 0, fmt.Errorf("%w %q (valid: %s)",
			ErrUnknownDistance, distanceLabel, strings.Join(raceDistanceOrder, ", "))
	}
	if vdot <= 0 {
		return 0, nil
	}

	lo, hi := 60.0, 6*3600.0 // one minute to six hours
	for i := 0; i < 60 && hi-lo > 0.5; i++ {
		mid := (lo + hi) / 2
		if EstimateVDOT(meters, mid) > vdot {
			lo = mid
		} else {
			hi = mid
		}
	}
	return int(math.Round((lo + hi) / 2)), nil
}

// FitnessLabel buckets a VDOT score into a human-readable fitness tier.
func FitnessLabel(vdot float64) string {
	switch {
	case vdot >= 75:
		return "Elite"
	case vdot >= 65:
		return "Highly Competitive"
	case vdot >= 55:
		return "Competitive"
	case vdot >= 45:
		return "Advanced Recreational"
	case vdot >= 38:
		return "Intermediate"
	case vdot >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}
