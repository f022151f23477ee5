// Package submit implements the race-result submission CLI: it walks a
// directory of race JSON files, skips anything already sent (tracked in a
// local SQLite state database) and POSTs the rest to a StrideCoach server.
package submit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/stridecoach/internal/pacing"
)

// RaceResult is the wire form of one race file. Matches the server's
// race submission payload.
type RaceResult struct {
	DistanceLabel string    `json:"distance_label"`
	TimeSec       float64   `json:"time_sec"`
	RaceDate      time.Time `json:"race_date,omitempty"`
}

// Stats tracks submission progress.
type Stats struct {
	FilesTotal     int
	FilesSubmitted int
	FilesSkipped   int
	FilesErrored   int

	RejectedDistances []string
}

// Submitter walks a race directory, validates each file and POSTs it to
// the StrideCoach server.
type Submitter struct {
	client    *Client
	state     *StateDB
	raceDir   string
	athleteID string
	dryRun    bool
	log       *slog.Logger
	stats     Stats
}

// New creates a new Submitter. client may be nil in dry-run mode.
func New(client *Client, state *StateDB, raceDir, athleteID string, dryRun bool, log *slog.Logger) *Submitter {
	return &Submitter{
		client:    client,
		state:     state,
		raceDir:   raceDir,
		athleteID: athleteID,
		dryRun:    dryRun,
		log:       log,
	}
}

// Run executes the submission pipeline over every .json file in the race
// directory.
func (s *Submitter) Run() (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(s.raceDir, "*.json"))
	if err != nil {
		return &s.stats, fmt.Errorf("listing %s: %w", s.raceDir, err)
	}

	rejectedSet := map[string]bool{}

	for _, f := range files {
		s.stats.FilesTotal++

		relPath, _ := filepath.Rel(s.raceDir, f)
		info, err := os.Stat(f)
		if err != nil {
			s.log.Warn("stat failed", "file", f, "error", err)
			s.stats.FilesErrored++
			continue
		}

		hash, err := HashFile(f)
		if err != nil {
			s.log.Warn("hash failed", "file", f, "error", err)
			s.stats.FilesErrored++
			continue
		}

		submitted, err := s.state.IsSubmitted(relPath, info.Size(), hash)
		if err != nil {
			s.log.Warn("state check failed", "file", f, "error", err)
			s.stats.FilesErrored++
			continue
		}
		if submitted {
			s.stats.FilesSkipped++
			continue
		}

		result, err := parseRaceFile(f)
		if err != nil {
			s.log.Warn("parse failed", "file", f, "error", err)
			s.stats.FilesErrored++
			continue
		}

		// Reject unknown distances locally rather than burning a request.
		meters, ok := pacing.RaceDistanceMeters(result.DistanceLabel)
		if !ok {
			if !rejectedSet[result.DistanceLabel] {
				s.stats.RejectedDistances = append(s.stats.RejectedDistances, result.DistanceLabel)
				rejectedSet[result.DistanceLabel] = true
			}
			s.stats.FilesErrored++
			continue
		}
		vdot := pacing.EstimateVDOT(meters, result.TimeSec)

		if s.dryRun {
			s.log.Info("dry-run: would submit",
				"file", relPath,
				"distance", result.DistanceLabel,
				"time_sec", result.TimeSec,
				"estimated_vdot", vdot,
			)
		} else {
			if err := s.client.SendRaceResult(s.athleteID, result); err != nil {
				return &s.stats, fmt.Errorf("submitting %s: %w", relPath, err)
			}
		}

		err = s.state.MarkSubmitted(SubmissionRecord{
			Path:          relPath,
			Size:          info.Size(),
			Hash:          hash,
			DistanceLabel: result.DistanceLabel,
			TimeSec:       result.TimeSec,
			EstimatedVDOT: vdot,
		})
		if err != nil {
			s.log.Warn("failed to mark submitted", "file", relPath, "error", err)
		}
		s.stats.FilesSubmitted++
	}

	s.log.Info("submission pass complete",
		"files", s.stats.FilesTotal,
		"submitted", s.stats.FilesSubmitted,
		"skipped", s.stats.FilesSkipped,
	)

	return &s.stats, nil
}

// parseRaceFile reads and validates one race JSON file.
func parseRaceFile(path string) (RaceResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RaceResult{}, err
	}

	var result RaceResult
	if err := json.Unmarshal(data, &result); err != nil {
		return RaceResult{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if result.DistanceLabel == "" {
		return RaceResult{}, fmt.Errorf("missing distance_label")
	}
	if result.TimeSec <= 0 {
		return RaceResult{}, fmt.Errorf("time_sec must be positive, got %v", result.TimeSec)
	}
	return result, nil
}
