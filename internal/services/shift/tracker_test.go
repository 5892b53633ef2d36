package shift

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkc/ponto_backendl/internal/models"
)

type fakeShiftStore struct {
	open      map[string]models.OpenShift
	history   []models.ShiftRecord
	failPut   bool
	failClose bool
	failList  bool
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{open: make(map[string]models.OpenShift)}
}

func (f *fakeShiftStore) PutOpen(s *models.OpenShift) error {
	if f.failPut {
		return errors.New("store unavailable")
	}
	f.open[s.ActorID] = *s
	return nil
}

func (f *fakeShiftStore) GetOpen(actorID string) (*models.OpenShift, error) {
	s, ok := f.open[actorID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeShiftStore) DeleteOpen(actorID string) error {
	delete(f.open, actorID)
	return nil
}

func (f *fakeShiftStore) ListOpen() ([]models.OpenShift, error) {
	if f.failList {
		return nil, errors.New("store unavailable")
	}
	var out []models.OpenShift
	for _, s := range f.open {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShiftStore) CloseShift(rec *models.ShiftRecord) error {
	if f.failClose {
		return errors.New("store unavailable")
	}
	f.history = append(f.history, *rec)
	delete(f.open, rec.ActorID)
	return nil
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) PostShiftEvent(text string) error {
	n.events = append(n.events, text)
	return nil
}

type failingNotifier struct{}

func (failingNotifier) PostShiftEvent(string) error { return errors.New("unreachable") }

func TestOpen_ThenOpenAgainFails(t *testing.T) {
	store := newFakeShiftStore()
	tracker := NewTracker(store, time.UTC, nil)

	_, err := tracker.Open("1", "alpha", time.Now())
	require.NoError(t, err)

	_, err = tracker.Open("1", "alpha", time.Now())
	assert.ErrorIs(t, err, ErrShiftAlreadyOpen)
	assert.Len(t, store.open, 1)
}

func TestClose_WithoutOpenFails(t *testing.T) {
	store := newFakeShiftStore()
	tracker := NewTracker(store, time.UTC, nil)

	_, err := tracker.Close("1", time.Now())
	assert.ErrorIs(t, err, ErrShiftNotOpen)
	assert.Empty(t, store.history)
}

func TestOpenClose_DurationTruncated(t *testing.T) {
	store := newFakeShiftStore()
	tracker := NewTracker(store, time.UTC, nil)

	t1 := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(5430 * time.Second) // 1h 30min 30s

	_, err := tracker.Open("1", "alpha", t1)
	require.NoError(t, err)

	rec, err := tracker.Close("1", t2)
	require.NoError(t, err)

	assert.Equal(t, "1h 30min", rec.DurationText)
	assert.Equal(t, t1, rec.StartedAt)
	assert.Equal(t, t2, rec.EndedAt)
	assert.False(t, tracker.IsOpen("1"))
	require.Len(t, store.history, 1)
	assert.NotContains(t, store.open, "1")
}

func TestRestore_ReproducesOpenSet(t *testing.T) {
	store := newFakeShiftStore()
	loc := time.FixedZone("BRT", -3*3600)

	before := NewTracker(store, loc, nil)
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)
	_, err := before.Open("1", "alpha", start)
	require.NoError(t, err)
	_, err = before.Open("2", "bravo", start.Add(time.Hour))
	require.NoError(t, err)

	// simulate a restart: fresh tracker over the same store
	after := NewTracker(store, loc, nil)
	assert.Equal(t, 2, after.Restore())
	assert.True(t, after.IsOpen("1"))
	assert.True(t, after.IsOpen("2"))

	// the restored start time must be the persisted one, not the clock
	rec, err := after.Close("1", start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "2h 0min", rec.DurationText)
}

func TestRestore_StoreFailureStartsEmpty(t *testing.T) {
	store := newFakeShiftStore()
	store.failList = true

	tracker := NewTracker(store, time.UTC, nil)
	assert.Zero(t, tracker.Restore())
	assert.Zero(t, tracker.OpenCount())
}

func TestOpen_PersistenceFailureLeavesNoState(t *testing.T) {
	store := newFakeShiftStore()
	store.failPut = true
	tracker := NewTracker(store, time.UTC, nil)

	_, err := tracker.Open("1", "alpha", time.Now())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrShiftAlreadyOpen)
	assert.False(t, tracker.IsOpen("1"))
}

func TestClose_PersistenceFailureKeepsShiftOpen(t *testing.T) {
	store := newFakeShiftStore()
	tracker := NewTracker(store, time.UTC, nil)

	_, err := tracker.Open("1", "alpha", time.Now())
	require.NoError(t, err)

	store.failClose = true
	_, err = tracker.Close("1", time.Now())
	require.Error(t, err)

	// no partial effect: the shift is still open and can close later
	assert.True(t, tracker.IsOpen("1"))
	store.failClose = false
	_, err = tracker.Close("1", time.Now())
	assert.NoError(t, err)
}

func TestNotifier_BestEffort(t *testing.T) {
	store := newFakeShiftStore()
	notifier := &recordingNotifier{}
	tracker := NewTracker(store, time.UTC, notifier)

	_, err := tracker.Open("1", "alpha", time.Now())
	require.NoError(t, err)
	_, err = tracker.Close("1", time.Now())
	require.NoError(t, err)
	assert.Len(t, notifier.events, 2)

	// an unreachable notifier must not fail the punch
	tracker = NewTracker(store, time.UTC, failingNotifier{})
	_, err = tracker.Open("2", "bravo", time.Now())
	assert.NoError(t, err)
}
