// Package menufake provides a deterministic in-memory backend double plus
// assertion helpers, so consumers can test fetch and sync flows without a
// server.
package menufake

import (
	"context"
	"sync"
	"testing"

	"github.com/goforj/menucache/menu"
	"github.com/goforj/menucache/menuapi"
)

// Op identifies a backend operation for assertions.
type Op string

const (
	OpAllData         Op = "all_data"
	OpGeneralData     Op = "general_data"
	OpPostPreferences Op = "post_preferences"
)

// Fake implements menuapi.API against in-memory data.
type Fake struct {
	mu sync.Mutex

	payload  menuapi.Payload
	readErr  error
	writeErr error
	counts   map[Op]int
	posted   [][]menu.Item
}

var _ menuapi.API = (*Fake)(nil)

// New creates an empty fake backend.
func New() *Fake {
	return &Fake{counts: make(map[Op]int)}
}

// SetPayload sets the dataset served by AllData and GeneralData.
func (f *Fake) SetPayload(p menuapi.Payload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payload = p
}

// FailReads makes AllData and GeneralData return err (nil restores success).
func (f *Fake) FailReads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

// FailWrites makes PostPreferences return err (nil restores success).
func (f *Fake) FailWrites(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErr = err
}

// AllData serves the configured payload in full.
func (f *Fake) AllData(_ context.Context, _ string) (menuapi.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[OpAllData]++
	if f.readErr != nil {
		return menuapi.Payload{}, f.readErr
	}
	return f.payload, nil
}

// GeneralData serves the configured payload without the favorites fields.
func (f *Fake) GeneralData(_ context.Context) (menuapi.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[OpGeneralData]++
	if f.readErr != nil {
		return menuapi.Payload{}, f.readErr
	}
	return menuapi.Payload{
		AllItems:   f.payload.AllItems,
		DailyItems: f.payload.DailyItems,
	}, nil
}

// PostPreferences records the posted set and echoes it back as the updated
// available-favorites list.
func (f *Fake) PostPreferences(_ context.Context, preferences []menu.Item, _ string) ([]menu.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[OpPostPreferences]++
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	posted := make([]menu.Item, len(preferences))
	copy(posted, preferences)
	f.posted = append(f.posted, posted)
	return posted, nil
}

// Count returns how many times op was called.
func (f *Fake) Count(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[op]
}

// LastPosted returns the most recent preference set sent to the backend,
// or nil when nothing was posted.
func (f *Fake) LastPosted() []menu.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.posted) == 0 {
		return nil
	}
	return f.posted[len(f.posted)-1]
}

// AssertCalled verifies op ran the expected number of times.
func (f *Fake) AssertCalled(t *testing.T, op Op, times int) {
	t.Helper()
	if got := f.Count(op); got != times {
		t.Fatalf("expected %s called %d times, got %d", op, times, got)
	}
}

// AssertNotCalled ensures op never ran.
func (f *Fake) AssertNotCalled(t *testing.T, op Op) {
	t.Helper()
	if got := f.Count(op); got != 0 {
		t.Fatalf("expected %s not called, got %d", op, got)
	}
}

// Reset clears recorded calls and posted sets.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]int)
	f.posted = nil
}
