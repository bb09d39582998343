package menucache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Slot names used by the menu client. A slot is a named JSON bucket; the
// cache holds at most one value per slot.
const (
	SlotAllItems           = "allItems"
	SlotDailyItems         = "dailyItems"
	SlotAvailableFavorites = "availableFavorites"
	SlotUserPreferences    = "userPreferences"
)

const (
	dateMarkerKey = "date"
	dateLayout    = "2006-01-02"
)

// DayCache is a slot-keyed cache valid only for the calendar day it was
// written on. Staleness is decided purely by comparing a stored date marker
// against today; entries are never explicitly invalidated.
type DayCache struct {
	store    Store
	now      func() time.Time
	observer Observer
}

// DayCacheOption customizes a DayCache.
type DayCacheOption func(*DayCache)

// WithClock overrides the time source used for the date marker.
func WithClock(now func() time.Time) DayCacheOption {
	return func(c *DayCache) {
		c.now = now
	}
}

// WithDayObserver attaches an observer to receive operation events.
func WithDayObserver(o Observer) DayCacheOption {
	return func(c *DayCache) {
		c.observer = o
	}
}

// NewDayCache creates a day cache bound to a concrete store.
func NewDayCache(store Store, opts ...DayCacheOption) *DayCache {
	c := &DayCache{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the underlying store implementation.
func (c *DayCache) Store() Store {
	return c.store
}

// Today reports the current calendar date in marker format.
func (c *DayCache) Today() string {
	return c.now().Format(dateLayout)
}

// Write JSON-encodes v and stores it under slot, overwriting any previous
// value. The date marker is not touched; writers that establish a fresh day
// use WriteAll.
func (c *DayCache) Write(ctx context.Context, slot string, v any) error {
	start := time.Now()
	body, err := json.Marshal(v)
	if err != nil {
		c.observe(ctx, "write", slot, false, err, start)
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	err = c.store.Set(ctx, slot, body, 0)
	c.observe(ctx, "write", slot, false, err, start)
	return err
}

// WriteAll stamps today's date marker and then writes every slot in values.
// It is the write path for a fresh fetch: after it returns, ReadAll for the
// written slot set hits until the date rolls over.
func (c *DayCache) WriteAll(ctx context.Context, values map[string]any) error {
	start := time.Now()
	err := c.store.Set(ctx, dateMarkerKey, []byte(c.Today()), 0)
	c.observe(ctx, "write_marker", dateMarkerKey, false, err, start)
	if err != nil {
		return err
	}
	for slot, v := range values {
		if err := c.Write(ctx, slot, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll returns the values for the requested slots only when the date
// marker equals today and every slot is present. Any absent slot, or a stale
// or missing marker, is a miss for the whole set; there are no partial
// results.
func (c *DayCache) ReadAll(ctx context.Context, slots ...string) (map[string]json.RawMessage, bool, error) {
	start := time.Now()
	marker, ok, err := c.store.Get(ctx, dateMarkerKey)
	if err != nil {
		c.observe(ctx, "read_all", dateMarkerKey, false, err, start)
		return nil, false, err
	}
	if !ok || string(marker) != c.Today() {
		c.observe(ctx, "read_all", dateMarkerKey, false, nil, start)
		return nil, false, nil
	}

	values := make(map[string]json.RawMessage, len(slots))
	for _, slot := range slots {
		body, ok, err := c.store.Get(ctx, slot)
		if err != nil {
			c.observe(ctx, "read_all", slot, false, err, start)
			return nil, false, err
		}
		if !ok {
			c.observe(ctx, "read_all", slot, false, nil, start)
			return nil, false, nil
		}
		values[slot] = json.RawMessage(body)
	}
	c.observe(ctx, "read_all", "", true, nil, start)
	return values, true, nil
}

// ReadSlot decodes a single slot into T, subject to the same date-marker
// validity as ReadAll.
func ReadSlot[T any](ctx context.Context, c *DayCache, slot string) (T, bool, error) {
	var zero T
	values, ok, err := c.ReadAll(ctx, slot)
	if err != nil || !ok {
		return zero, ok, err
	}
	var out T
	if err := json.Unmarshal(values[slot], &out); err != nil {
		return zero, false, fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return out, true, nil
}

// Clear removes every entry in the store scope, marker included.
func (c *DayCache) Clear(ctx context.Context) error {
	start := time.Now()
	err := c.store.Flush(ctx)
	c.observe(ctx, "clear", "", err == nil, err, start)
	return err
}

func (c *DayCache) observe(ctx context.Context, op, slot string, hit bool, err error, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.OnCacheOp(ctx, op, slot, hit, err, time.Since(start), c.store.Driver())
}
