package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/stridecoach/internal/models"
	"github.com/claude/stridecoach/internal/planner"
)

// InsertPlan stores a generated plan and all of its sessions. The session
// structures are serialized to JSON columns so the prescription payload
// survives verbatim.
func (db *DB) InsertPlan(ctx context.Context, athleteID uuid.UUID, plan planner.Plan) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO plans (id, athlete_id, race_goal, weeks, sessions_per_week, vdot, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		plan.ID, athleteID, plan.RaceGoal, plan.Weeks, plan.SessionsPerWeek, plan.VDOT, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	if len(plan.Sessions) == 0 {
		return nil
	}

	query := `INSERT INTO plan_sessions (id, plan_id, week, slot, phase, workout_type, duration_min, structure) VALUES `
	args := make([]any, 0, len(plan.Sessions)*8)
	valueStrings := make([]string, 0, len(plan.Sessions))

	for i, s := range plan.Sessions {
		structJSON, err := json.Marshal(s.Structure)
		if err != nil {
			return fmt.Errorf("marshaling session structure: %w", err)
		}
		base := i * 8
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8,
		))
		args = append(args, s.ID, plan.ID, s.Week, s.Slot, s.Phase, s.WorkoutType, s.DurationMin, structJSON)
	}

	query += strings.Join(valueStrings, ",")

	if _, err := db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting plan sessions: %w", err)
	}
	return nil
}

// PlanDetail is a stored plan header with its sessions.
type PlanDetail struct {
	models.PlanRow
	Sessions []models.PlanSessionRow `json:"sessions"`
}

// GetPlan retrieves a plan and its sessions ordered by week and slot.
func (db *DB) GetPlan(ctx context.Context, planID uuid.UUID) (*PlanDetail, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, athlete_id, race_goal, weeks, sessions_per_week, vdot, created_at
		 FROM plans WHERE id = $1`, planID)

	var p models.PlanRow
	if err := row.Scan(&p.ID, &p.AthleteID, &p.RaceGoal, &p.Weeks,
		&p.SessionsPerWeek, &p.VDOT, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}

	detail := &PlanDetail{PlanRow: p}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, plan_id, week, slot, phase, workout_type, duration_min, structure
		 FROM plan_sessions WHERE plan_id = $1 ORDER BY week ASC, slot ASC`, planID)
	if err != nil {
		return nil, fmt.Errorf("querying plan sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.PlanSessionRow
		if err := rows.Scan(&s.ID, &s.PlanID, &s.Week, &s.Slot, &s.Phase,
			&s.WorkoutType, &s.DurationMin, &s.StructureJSON); err != nil {
			return nil, fmt.Errorf("scanning plan session: %w", err)
		}
		detail.Sessions = append(detail.Sessions, s)
	}
	return detail, rows.Err()
}

// ListPlans retrieves an athlete's plan headers, newest first.
func (db *DB) ListPlans(ctx context.Context, athleteID uuid.UUID) ([]models.PlanRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, athlete_id, race_goal, weeks, sessions_per_week, vdot, created_at
		 FROM plans WHERE athlete_id = $1 ORDER BY created_at DESC`, athleteID)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var result []models.PlanRow
	for rows.Next() {
		var p models.PlanRow
		if err := rows.Scan(&p.ID, &p.AthleteID, &p.RaceGoal, &p.Weeks,
			&p.SessionsPerWeek, &p.VDOT, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
