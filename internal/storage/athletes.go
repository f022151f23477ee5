package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/claude/stridecoach/internal/models"
)

// InsertAthlete inserts an athlete row.
func (db *DB) InsertAthlete(ctx context.Context, row models.AthleteRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO athletes (id, name, email, vdot, race_goal, sessions_per_week, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		row.ID, row.Name, row.Email, row.VDOT, row.RaceGoal, row.SessionsPerWeek, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting athlete: %w", err)
	}
	return nil
}

// GetAthlete retrieves an athlete by ID.
func (db *DB) GetAthlete(ctx context.Context, id uuid.UUID) (*models.AthleteRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, email, vdot, race_goal, sessions_per_week, created_at
		 FROM athletes WHERE id = $1`, id)

	var a models.AthleteRow
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.VDOT, &a.RaceGoal,
		&a.SessionsPerWeek, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("querying athlete: %w", err)
	}
	return &a, nil
}

// ListAthletes retrieves all athletes, newest first.
func (db *DB) ListAthletes(ctx context.Context) ([]models.AthleteRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, email, vdot, race_goal, sessions_per_week, created_at
		 FROM athletes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying athletes: %w", err)
	}
	defer rows.Close()

	var result []models.AthleteRow
	for rows.Next() {
		var a models.AthleteRow
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.VDOT, &a.RaceGoal,
			&a.SessionsPerWeek, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning athlete: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// UpdateAthleteVDOT stores a re-estimated fitness score.
func (db *DB) UpdateAthleteVDOT(ctx context.Context, id uuid.UUID, vdot int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE athletes SET vdot = $2 WHERE id = $1`, id, vdot)
	if err != nil {
		return fmt.Errorf("updating athlete vdot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating athlete vdot: no athlete %s", id)
	}
	return nil
}
