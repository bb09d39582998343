package menusync

import (
	"context"
	"errors"
	"testing"

	"github.com/goforj/menucache"
	"github.com/goforj/menucache/menu"
	"github.com/goforj/menucache/menufake"
)

func newSyncedCache(t *testing.T, ctx context.Context, favorites, preferences []menu.Item) *menucache.DayCache {
	t.Helper()
	cache := menucache.NewDayCache(menucache.NewMemoryStore(ctx))
	err := cache.WriteAll(ctx, map[string]any{
		menucache.SlotAllItems:           []menu.Item{},
		menucache.SlotDailyItems:         []menu.DailyItem{},
		menucache.SlotAvailableFavorites: favorites,
		menucache.SlotUserPreferences:    preferences,
	})
	if err != nil {
		t.Fatalf("seed cache failed: %v", err)
	}
	return cache
}

func TestToggleFavoriteRequiresToken(t *testing.T) {
	ctx := context.Background()
	backend := menufake.New()
	cache := menucache.NewDayCache(menucache.NewMemoryStore(ctx))
	syncer := NewSyncer(cache, backend, WithSyncerLogger(quietLogger()))

	favorites := []menu.Item{{Name: "Pizza"}}
	got, err := syncer.ToggleFavorite(ctx, menu.Item{Name: "Pasta"}, favorites, "")
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pizza" {
		t.Fatalf("expected favorites unchanged, got %+v", got)
	}
	syncer.Wait()
	backend.AssertNotCalled(t, menufake.OpPostPreferences)
}

func TestToggleFavoritePostsAndReconcilesCache(t *testing.T) {
	ctx := context.Background()
	backend := menufake.New()
	cache := newSyncedCache(t, ctx, []menu.Item{{Name: "Pizza"}}, []menu.Item{{Name: "Pizza"}})
	syncer := NewSyncer(cache, backend, WithSyncerLogger(quietLogger()))

	got, err := syncer.ToggleFavorite(ctx, menu.Item{Name: "Pasta"}, []menu.Item{{Name: "Pizza"}}, "tok")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected optimistic add, got %+v", got)
	}
	syncer.Wait()

	backend.AssertCalled(t, menufake.OpPostPreferences, 1)
	posted := backend.LastPosted()
	if len(posted) != 2 || !menu.ContainsItem(posted, menu.Item{Name: "Pasta"}) {
		t.Fatalf("unexpected posted set: %+v", posted)
	}

	prefs, ok, err := menucache.ReadSlot[[]menu.Item](ctx, cache, menucache.SlotUserPreferences)
	if err != nil || !ok {
		t.Fatalf("read preferences failed: ok=%v err=%v", ok, err)
	}
	if len(prefs) != 2 {
		t.Fatalf("expected preferences slot reconciled, got %+v", prefs)
	}
	favs, ok, err := menucache.ReadSlot[[]menu.Item](ctx, cache, menucache.SlotAvailableFavorites)
	if err != nil || !ok {
		t.Fatalf("read favorites failed: ok=%v err=%v", ok, err)
	}
	if len(favs) != 2 {
		t.Fatalf("expected favorites slot updated from server response, got %+v", favs)
	}
}

func TestToggleFavoriteRemoveByNormalizedName(t *testing.T) {
	ctx := context.Background()
	backend := menufake.New()
	cache := newSyncedCache(t, ctx, nil, nil)
	syncer := NewSyncer(cache, backend, WithSyncerLogger(quietLogger()))

	got, err := syncer.ToggleFavorite(ctx, menu.Item{Name: "  pizza "}, []menu.Item{{Name: "Pizza"}}, "tok")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected normalized removal, got %+v", got)
	}
	syncer.Wait()

	if posted := backend.LastPosted(); len(posted) != 0 {
		t.Fatalf("expected empty set posted, got %+v", posted)
	}
}

func TestToggleFavoriteKeepsOptimisticSetOnPostFailure(t *testing.T) {
	ctx := context.Background()
	backend := menufake.New()
	backend.FailWrites(errors.New("backend down"))
	seeded := []menu.Item{{Name: "Pizza"}}
	cache := newSyncedCache(t, ctx, seeded, seeded)
	syncer := NewSyncer(cache, backend, WithSyncerLogger(quietLogger()))

	got, err := syncer.ToggleFavorite(ctx, menu.Item{Name: "Pasta"}, seeded, "tok")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected optimistic set returned despite failure, got %+v", got)
	}
	syncer.Wait()

	backend.AssertCalled(t, menufake.OpPostPreferences, 1)

	// cache slots keep the pre-toggle values, the next fetch reconciles
	prefs, ok, err := menucache.ReadSlot[[]menu.Item](ctx, cache, menucache.SlotUserPreferences)
	if err != nil || !ok {
		t.Fatalf("read preferences failed: ok=%v err=%v", ok, err)
	}
	if len(prefs) != 1 || prefs[0].Name != "Pizza" {
		t.Fatalf("expected preferences slot untouched on failure, got %+v", prefs)
	}
}

func TestSyncerWaitWithNoPosts(t *testing.T) {
	syncer := NewSyncer(menucache.NewDayCache(menucache.NewMemoryStore(context.Background())), menufake.New())
	syncer.Wait()
}
