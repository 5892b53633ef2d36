// models/shift.go
package models

import "time"

// OpenShift is the state between a recorded entry and its matching exit.
// At most one exists per actor.
type OpenShift struct {
	ActorID    string    `json:"actor_id"`
	ActorLabel string    `json:"actor_label"`
	StartedAt  time.Time `json:"started_at"`
}

// ShiftRecord is one completed shift. Append-only.
type ShiftRecord struct {
	ID           int64     `json:"id"`
	ActorID      string    `json:"actor_id"`
	ActorLabel   string    `json:"actor_label"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`
	DurationText string    `json:"duration_text"`
}
