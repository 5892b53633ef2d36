package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vkc/ponto_backendl/internal/models"
)

// ShiftRepository persists the open-shift set and the closed-shift history.
type ShiftRepository struct {
	db *sql.DB
}

func NewShiftRepository(db *sql.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// PutOpen inserts or replaces the actor's open-shift row.
func (r *ShiftRepository) PutOpen(s *models.OpenShift) error {
	_, err := r.db.Exec(`
		INSERT INTO open_shifts (actor_id, actor_label, started_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id) DO UPDATE SET
			actor_label = excluded.actor_label,
			started_at  = excluded.started_at
	`, s.ActorID, s.ActorLabel, s.StartedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert open shift: %w", err)
	}
	return nil
}

// GetOpen returns the actor's open shift, or nil when there is none.
func (r *ShiftRepository) GetOpen(actorID string) (*models.OpenShift, error) {
	var s models.OpenShift
	var startedAt string
	err := r.db.QueryRow(`
		SELECT actor_id, actor_label, started_at FROM open_shifts WHERE actor_id = $1
	`, actorID).Scan(&s.ActorID, &s.ActorLabel, &startedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("select open shift: %w", err)
	}

	s.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	return &s, nil
}

// DeleteOpen removes the actor's open-shift row if present.
func (r *ShiftRepository) DeleteOpen(actorID string) error {
	if _, err := r.db.Exec(`DELETE FROM open_shifts WHERE actor_id = $1`, actorID); err != nil {
		return fmt.Errorf("delete open shift: %w", err)
	}
	return nil
}

// ListOpen returns every persisted open shift, timestamps as stored.
func (r *ShiftRepository) ListOpen() ([]models.OpenShift, error) {
	rows, err := r.db.Query(`SELECT actor_id, actor_label, started_at FROM open_shifts`)
	if err != nil {
		return nil, fmt.Errorf("list open shifts: %w", err)
	}
	defer rows.Close()

	var shifts []models.OpenShift
	for rows.Next() {
		var s models.OpenShift
		var startedAt string
		if err := rows.Scan(&s.ActorID, &s.ActorLabel, &startedAt); err != nil {
			return nil, fmt.Errorf("scan open shift row: %w", err)
		}
		s.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// CloseShift appends the history row and deletes the open row in one
// transaction.
func (r *ShiftRepository) CloseShift(rec *models.ShiftRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin close shift: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO shift_history (actor_id, actor_label, started_at, ended_at, duration_text)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.ActorID, rec.ActorLabel,
		rec.StartedAt.Format(time.RFC3339), rec.EndedAt.Format(time.RFC3339), rec.DurationText)
	if err != nil {
		return fmt.Errorf("insert shift history: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM open_shifts WHERE actor_id = $1`, rec.ActorID); err != nil {
		return fmt.Errorf("delete open shift: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit close shift: %w", err)
	}
	return nil
}

// ListHistory returns closed shifts, newest first. limit <= 0 means all.
func (r *ShiftRepository) ListHistory(limit int) ([]models.ShiftRecord, error) {
	query := `
		SELECT id, actor_id, actor_label, started_at, ended_at, duration_text
		FROM shift_history
		ORDER BY id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(query+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list shift history: %w", err)
	}
	defer rows.Close()

	var records []models.ShiftRecord
	for rows.Next() {
		var rec models.ShiftRecord
		var startedAt, endedAt string
		if err := rows.Scan(&rec.ID, &rec.ActorID, &rec.ActorLabel, &startedAt, &endedAt, &rec.DurationText); err != nil {
			return nil, fmt.Errorf("scan shift history row: %w", err)
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at %q: %w", endedAt, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
