package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vkc/ponto_backendl/internal/models"
)

// IncidentRepository persists the append-only incident log.
type IncidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// RecordBatch inserts all rows in one transaction and returns the author's
// lifetime total as seen inside that transaction. Either every row lands and
// the total reflects them, or nothing is written.
func (r *IncidentRepository) RecordBatch(records []models.IncidentRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin incident batch: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		_, err = tx.Exec(`
			INSERT INTO incidents (actor_id, actor_label, raw_text, recorded_at)
			VALUES ($1, $2, $3, $4)
		`, rec.ActorID, rec.ActorLabel, rec.RawText, rec.RecordedAt.Format(time.RFC3339))
		if err != nil {
			return 0, fmt.Errorf("insert incident: %w", err)
		}
	}

	var total int
	err = tx.QueryRow(`SELECT COUNT(*) FROM incidents WHERE actor_id = $1`, records[0].ActorID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count incidents: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit incident batch: %w", err)
	}
	return total, nil
}

// CountByActor returns the actor's lifetime incident total.
func (r *IncidentRepository) CountByActor(actorID string) (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM incidents WHERE actor_id = $1`, actorID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count incidents: %w", err)
	}
	return total, nil
}

// ReportByActor groups incidents per actor, labels each group with the
// actor's most recent label, and orders by count descending. Ties keep
// first-recorded order.
func (r *IncidentRepository) ReportByActor() ([]models.ActorCount, error) {
	rows, err := r.db.Query(`
		SELECT l.actor_label, c.total
		FROM (
			SELECT actor_id, COUNT(*) AS total, MIN(id) AS first_id
			FROM incidents GROUP BY actor_id
		) c
		JOIN (
			SELECT actor_id, actor_label FROM incidents
			WHERE id IN (SELECT MAX(id) FROM incidents GROUP BY actor_id)
		) l ON c.actor_id = l.actor_id
		ORDER BY c.total DESC, c.first_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("incident report: %w", err)
	}
	defer rows.Close()

	var report []models.ActorCount
	for rows.Next() {
		var ac models.ActorCount
		if err := rows.Scan(&ac.ActorLabel, &ac.Total); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		report = append(report, ac)
	}
	return report, rows.Err()
}
