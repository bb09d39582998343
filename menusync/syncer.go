package menusync

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/goforj/menucache"
	"github.com/goforj/menucache/menu"
	"github.com/goforj/menucache/menuapi"
)

// ErrAuthRequired signals the view layer to prompt for authentication. No
// request is issued and no cached state changes.
var ErrAuthRequired = errors.New("authentication required")

// Syncer applies favorite toggles optimistically and pushes the full set to
// the backend in the background.
type Syncer struct {
	cache *menucache.DayCache
	api   menuapi.API
	log   *slog.Logger
	wg    sync.WaitGroup
}

// SyncerOption customizes a Syncer.
type SyncerOption func(*Syncer)

// WithSyncerLogger overrides the default logger.
func WithSyncerLogger(log *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.log = log
	}
}

// NewSyncer binds a syncer to a day cache and a backend client.
func NewSyncer(cache *menucache.DayCache, api menuapi.API, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		cache: cache,
		api:   api,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleFavorite removes item from favorites when present (by normalized
// name) or appends it, returns the new set immediately, and posts it to the
// backend without blocking the caller. A failed post is logged and the
// optimistic set is kept; the client drifts from the server until the next
// authenticated fetch.
func (s *Syncer) ToggleFavorite(ctx context.Context, item menu.Item, favorites []menu.Item, token string) ([]menu.Item, error) {
	if token == "" {
		return favorites, ErrAuthRequired
	}

	next := menu.ToggleItem(favorites, item)

	s.wg.Add(1)
	go s.post(context.WithoutCancel(ctx), next, token)

	return next, nil
}

// Wait blocks until every in-flight preference post has finished. Callers
// use it before teardown; the UI path never needs it.
func (s *Syncer) Wait() {
	s.wg.Wait()
}

func (s *Syncer) post(ctx context.Context, preferences []menu.Item, token string) {
	defer s.wg.Done()

	favorites, err := s.api.PostPreferences(ctx, preferences, token)
	if err != nil {
		s.log.Error("post preferences failed", "error", err)
		return
	}

	// The posted set becomes the preference slot; the server response is the
	// canonical available-favorites list.
	if err := s.cache.Write(ctx, menucache.SlotUserPreferences, preferences); err != nil {
		s.log.Warn("write preferences slot failed", "error", err)
	}
	if err := s.cache.Write(ctx, menucache.SlotAvailableFavorites, favorites); err != nil {
		s.log.Warn("write favorites slot failed", "error", err)
	}
}
