// models/incident.go
package models

import "time"

// IncidentRecord is one matched occurrence of the flagged phrase. A message
// containing the phrase three times produces three rows with the same raw
// text and timestamp.
type IncidentRecord struct {
	ID         int64     `json:"id"`
	ActorID    string    `json:"actor_id"`
	ActorLabel string    `json:"actor_label"`
	RawText    string    `json:"raw_text"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ActorCount is one row of the per-actor incident report.
type ActorCount struct {
	ActorLabel string `json:"actor_label"`
	Total      int    `json:"total"`
}
