package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vkc/ponto_backendl/internal/models"
)

// phrasePattern matches the flagged phrase after normalization and
// upper-casing; the two words may be separated by any run of whitespace,
// including none.
var phrasePattern = regexp.MustCompile(`FICHA\s*CRIMINAL`)

// IncidentStore is the persistence the counter runs on.
type IncidentStore interface {
	RecordBatch(records []models.IncidentRecord) (int, error)
	CountByActor(actorID string) (int, error)
	ReportByActor() ([]models.ActorCount, error)
}

// Counter scans messages for the flagged phrase and appends one incident row
// per occurrence.
type Counter struct {
	store IncidentStore
	cache *TotalsCache
}

func NewCounter(store IncidentStore, cache *TotalsCache) *Counter {
	return &Counter{store: store, cache: cache}
}

// CountPhrase returns the number of non-overlapping occurrences of the
// flagged phrase in the normalized text.
func CountPhrase(text string) int {
	normalized := strings.ToUpper(NormalizeASCII(text))
	return len(phrasePattern.FindAllStringIndex(normalized, -1))
}

// CountAndRecord counts occurrences in text and, when there are any, writes
// all rows in one transaction. It returns the occurrences found in this
// message and the author's lifetime total including them. With zero matches
// nothing is written; on error nothing is written either.
func (c *Counter) CountAndRecord(text, actorID, actorLabel string, now time.Time) (matches, total int, err error) {
	matches = CountPhrase(text)
	if matches == 0 {
		return 0, 0, nil
	}

	records := make([]models.IncidentRecord, matches)
	for i := range records {
		records[i] = models.IncidentRecord{
			ActorID:    actorID,
			ActorLabel: actorLabel,
			RawText:    text,
			RecordedAt: now,
		}
	}

	total, err = c.store.RecordBatch(records)
	if err != nil {
		return 0, 0, fmt.Errorf("record incidents: %w", err)
	}

	c.cache.Set(actorID, total)
	return matches, total, nil
}

// LifetimeTotal returns the actor's total incident count, preferring the
// cache and falling back to the database.
func (c *Counter) LifetimeTotal(actorID string) (int, error) {
	if total, ok := c.cache.Get(actorID); ok {
		return total, nil
	}
	total, err := c.store.CountByActor(actorID)
	if err != nil {
		return 0, err
	}
	c.cache.Set(actorID, total)
	return total, nil
}

// Report returns per-actor totals, count descending.
func (c *Counter) Report() ([]models.ActorCount, error) {
	return c.store.ReportByActor()
}
