// Package menusync keeps the local day cache and the backend in agreement:
// cache-first combined reads, and optimistic preference writes.
package menusync

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/goforj/menucache"
	"github.com/goforj/menucache/menu"
	"github.com/goforj/menucache/menuapi"
)

// Snapshot is the decoded slot set a fetch produces.
type Snapshot struct {
	AllItems           []menu.Item
	DailyItems         []menu.DailyItem
	AvailableFavorites []menu.Item
	UserPreferences    []menu.Item
}

var userSlots = []string{
	menucache.SlotAllItems,
	menucache.SlotDailyItems,
	menucache.SlotAvailableFavorites,
	menucache.SlotUserPreferences,
}

var guestSlots = []string{
	menucache.SlotAllItems,
	menucache.SlotDailyItems,
}

// Coordinator decides between serving cached data and fetching from the
// backend, and writes fresh results back into the day cache.
type Coordinator struct {
	cache *menucache.DayCache
	api   menuapi.API
	log   *slog.Logger

	// gen orders overlapping fetches; only the latest one may write back.
	gen atomic.Uint64
}

// CoordinatorOption customizes a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithCoordinatorLogger overrides the default logger.
func WithCoordinatorLogger(log *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.log = log
	}
}

// NewCoordinator binds a coordinator to a day cache and a backend client.
func NewCoordinator(cache *menucache.DayCache, api menuapi.API, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		cache: cache,
		api:   api,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchForUser returns today's combined dataset for an authenticated user.
// A valid cache covering all four user slots is served without a network
// call; anything less triggers an authenticated fetch whose result is
// written back. A cache populated by a guest fetch misses here because the
// favorites slots are absent.
//
// An empty token returns ErrAuthRequired without touching the cache or the
// network: an unauthenticated response carries empty favorites fields, and
// writing those under the user slots would shadow the real set for the rest
// of the day.
func (c *Coordinator) FetchForUser(ctx context.Context, token string) (Snapshot, error) {
	if token == "" {
		return Snapshot{}, ErrAuthRequired
	}
	return c.fetch(ctx, userSlots, func(ctx context.Context) (menuapi.Payload, error) {
		return c.api.AllData(ctx, token)
	})
}

// FetchForGuest returns today's non-user-exclusive dataset, cache-first.
func (c *Coordinator) FetchForGuest(ctx context.Context) (Snapshot, error) {
	return c.fetch(ctx, guestSlots, func(ctx context.Context) (menuapi.Payload, error) {
		return c.api.GeneralData(ctx)
	})
}

func (c *Coordinator) fetch(ctx context.Context, slots []string, load func(context.Context) (menuapi.Payload, error)) (Snapshot, error) {
	gen := c.gen.Add(1)

	values, ok, err := c.cache.ReadAll(ctx, slots...)
	if err != nil {
		// A broken store read is treated as a miss; the network still works.
		c.log.Warn("day cache read failed", "error", err)
	}
	if ok {
		snap, err := decodeSnapshot(values)
		if err == nil {
			return snap, nil
		}
		c.log.Warn("day cache slot undecodable, refetching", "error", err)
	}

	payload, err := load(ctx)
	if err != nil {
		c.log.Error("backend fetch failed", "error", err)
		return Snapshot{}, err
	}
	snap := snapshotFromPayload(payload)

	if c.gen.Load() != gen {
		c.log.Debug("fetch superseded, skipping cache write")
		return snap, nil
	}
	if err := c.cache.WriteAll(ctx, snap.slotValues(slots)); err != nil {
		c.log.Warn("day cache write failed", "error", err)
	}
	return snap, nil
}

// snapshotFromPayload defaults absent response fields to empty sequences so
// a later cache read never confuses "fetched, empty" with "never fetched".
func snapshotFromPayload(p menuapi.Payload) Snapshot {
	snap := Snapshot{
		AllItems:           p.AllItems,
		DailyItems:         p.DailyItems,
		AvailableFavorites: p.AvailableFavorites,
		UserPreferences:    p.UserPreferences,
	}
	if snap.AllItems == nil {
		snap.AllItems = []menu.Item{}
	}
	if snap.DailyItems == nil {
		snap.DailyItems = []menu.DailyItem{}
	}
	if snap.AvailableFavorites == nil {
		snap.AvailableFavorites = []menu.Item{}
	}
	if snap.UserPreferences == nil {
		snap.UserPreferences = []menu.Item{}
	}
	return snap
}

func (s Snapshot) slotValues(slots []string) map[string]any {
	all := map[string]any{
		menucache.SlotAllItems:           s.AllItems,
		menucache.SlotDailyItems:         s.DailyItems,
		menucache.SlotAvailableFavorites: s.AvailableFavorites,
		menucache.SlotUserPreferences:    s.UserPreferences,
	}
	values := make(map[string]any, len(slots))
	for _, slot := range slots {
		values[slot] = all[slot]
	}
	return values
}

func decodeSnapshot(values map[string]json.RawMessage) (Snapshot, error) {
	var snap Snapshot
	targets := map[string]any{
		menucache.SlotAllItems:           &snap.AllItems,
		menucache.SlotDailyItems:         &snap.DailyItems,
		menucache.SlotAvailableFavorites: &snap.AvailableFavorites,
		menucache.SlotUserPreferences:    &snap.UserPreferences,
	}
	for slot, raw := range values {
		target, known := targets[slot]
		if !known {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return Snapshot{}, err
		}
	}
	return snap, nil
}
