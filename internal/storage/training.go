package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claude/stridecoach/internal/models"
)

// InsertRaceResult inserts a race result row.
func (db *DB) InsertRaceResult(ctx context.Context, row models.RaceResultRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO race_results (id, athlete_id, distance_label, time_sec, estimated_vdot, race_date, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT DO NOTHING`,
		row.ID, row.AthleteID, row.DistanceLabel, row.TimeSec, row.EstimatedVDOT,
		row.RaceDate, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting race result: %w", err)
	}
	return nil
}

// QueryRaceResults retrieves an athlete's race results, newest race first.
func (db *DB) QueryRaceResults(ctx context.Context, athleteID uuid.UUID) ([]models.RaceResultRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, athlete_id, distance_label, time_sec, estimated_vdot, race_date, created_at
		 FROM race_results WHERE athlete_id = $1 ORDER BY race_date DESC`, athleteID)
	if err != nil {
		return nil, fmt.Errorf("querying race results: %w", err)
	}
	defer rows.Close()

	var result []models.RaceResultRow
	for rows.Next() {
		var r models.RaceResultRow
		if err := rows.Scan(&r.ID, &r.AthleteID, &r.DistanceLabel, &r.TimeSec,
			&r.EstimatedVDOT, &r.RaceDate, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning race result: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// InsertTrainingLog inserts a training log row.
func (db *DB) InsertTrainingLog(ctx context.Context, row models.TrainingLogRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO training_logs (id, athlete_id, workout_type, duration_min, distance_km,
		 rpe, readiness, pain_flag, notes, logged_at, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		row.ID, row.AthleteID, row.WorkoutType, row.DurationMin, row.DistanceKm,
		row.RPE, row.Readiness, row.PainFlag, row.Notes, row.LoggedAt, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting training log: %w", err)
	}
	return nil
}

// QueryTrainingLogs retrieves an athlete's logs in a time range, newest
// first.
func (db *DB) QueryTrainingLogs(ctx context.Context, athleteID uuid.UUID, start, end time.Time) ([]models.TrainingLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, athlete_id, workout_type, duration_min, distance_km,
		 rpe, readiness, pain_flag, notes, logged_at, created_at
		 FROM training_logs
		 WHERE athlete_id = $1 AND logged_at >= $2 AND logged_at < $3
		 ORDER BY logged_at DESC`,
		athleteID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying training logs: %w", err)
	}
	defer rows.Close()

	var result []models.TrainingLogRow
	for rows.Next() {
		var l models.TrainingLogRow
		if err := rows.Scan(&l.ID, &l.AthleteID, &l.WorkoutType, &l.DurationMin, &l.DistanceKm,
			&l.RPE, &l.Readiness, &l.PainFlag, &l.Notes, &l.LoggedAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning training log: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
