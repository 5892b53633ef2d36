package shift

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/vkc/ponto_backendl/internal/models"
	"github.com/vkc/ponto_backendl/internal/pkg/response"
)

var (
	// ErrShiftAlreadyOpen means the actor pressed entry with a punch still open.
	ErrShiftAlreadyOpen = errors.New("shift already open")
	// ErrShiftNotOpen means the actor pressed exit without an open punch.
	ErrShiftNotOpen = errors.New("no open shift")
)

// OpenShiftStore is the persistence the tracker runs on.
type OpenShiftStore interface {
	PutOpen(s *models.OpenShift) error
	GetOpen(actorID string) (*models.OpenShift, error)
	DeleteOpen(actorID string) error
	ListOpen() ([]models.OpenShift, error)
	CloseShift(rec *models.ShiftRecord) error
}

// Notifier receives best-effort shift-event announcements. Failures are
// logged and never affect the punch itself.
type Notifier interface {
	PostShiftEvent(text string) error
}

// Tracker keeps the in-memory open-shift index over the durable store.
// The map is a cache populated by Restore; the store rows are authoritative
// across restarts.
//
// Close removes the in-memory entry before the history insert and open-row
// delete commit; a crash inside that window leaves a stale persisted open row
// that reappears on the next Restore. Known and accepted.
type Tracker struct {
	mu       sync.Mutex
	open     map[string]models.OpenShift
	store    OpenShiftStore
	loc      *time.Location
	notifier Notifier
}

func NewTracker(store OpenShiftStore, loc *time.Location, notifier Notifier) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{
		open:     make(map[string]models.OpenShift),
		store:    store,
		loc:      loc,
		notifier: notifier,
	}
}

// Restore reloads every persisted open shift into memory, timestamps
// converted to the configured zone. Entries are never dropped by age.
// On failure the tracker starts empty rather than aborting startup.
func (t *Tracker) Restore() int {
	rows, err := t.store.ListOpen()
	if err != nil {
		log.Printf("Failed to restore open shifts, starting empty: %v", err)
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = make(map[string]models.OpenShift, len(rows))
	for _, s := range rows {
		s.StartedAt = s.StartedAt.In(t.loc)
		t.open[s.ActorID] = s
	}
	if len(t.open) > 0 {
		log.Printf("✅ Restored %d open shift(s) from the database", len(t.open))
	}
	return len(t.open)
}

// Open records an entry punch. The membership check and the persistence
// write happen under one lock so two rapid presses cannot both succeed.
func (t *Tracker) Open(actorID, actorLabel string, now time.Time) (time.Time, error) {
	now = now.In(t.loc)

	t.mu.Lock()
	if _, exists := t.open[actorID]; exists {
		t.mu.Unlock()
		return time.Time{}, ErrShiftAlreadyOpen
	}

	entry := models.OpenShift{ActorID: actorID, ActorLabel: actorLabel, StartedAt: now}
	if err := t.store.PutOpen(&entry); err != nil {
		t.mu.Unlock()
		return time.Time{}, fmt.Errorf("persist open shift: %w", err)
	}
	t.open[actorID] = entry
	t.mu.Unlock()

	t.notify(fmt.Sprintf("✅ Entrada registrada: %s (%s) às %s",
		actorLabel, actorID, now.Format("02/01 15:04:05")))
	return now, nil
}

// Close records an exit punch and returns the completed record with its
// duration text (hours and minutes, seconds truncated).
func (t *Tracker) Close(actorID string, now time.Time) (*models.ShiftRecord, error) {
	now = now.In(t.loc)

	t.mu.Lock()
	entry, exists := t.open[actorID]
	if !exists {
		t.mu.Unlock()
		return nil, ErrShiftNotOpen
	}
	delete(t.open, actorID)

	seconds := int(now.Sub(entry.StartedAt).Seconds())
	rec := &models.ShiftRecord{
		ActorID:      entry.ActorID,
		ActorLabel:   entry.ActorLabel,
		StartedAt:    entry.StartedAt,
		EndedAt:      now,
		DurationText: response.FormatDuration(seconds),
	}

	if err := t.store.CloseShift(rec); err != nil {
		// reinsert so a failed write leaves no partial effect
		t.open[actorID] = entry
		t.mu.Unlock()
		return nil, fmt.Errorf("persist closed shift: %w", err)
	}
	t.mu.Unlock()

	t.notify(fmt.Sprintf("❌ Saída registrada: %s (%s) às %s | Tempo: %s",
		entry.ActorLabel, actorID, now.Format("02/01 15:04:05"), rec.DurationText))
	return rec, nil
}

// IsOpen reports whether the actor currently has an open shift.
func (t *Tracker) IsOpen(actorID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, exists := t.open[actorID]
	return exists
}

// OpenCount returns the size of the in-memory open set.
func (t *Tracker) OpenCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.open)
}

func (t *Tracker) notify(text string) {
	if t.notifier == nil {
		return
	}
	if err := t.notifier.PostShiftEvent(text); err != nil {
		log.Printf("WARN: shift event notification failed: %v", err)
	}
}
