package menu

import (
	"testing"
	"time"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Pizza":    "pizza",
		"  Pasta ": "pasta",
		"BBQ Ribs": "bbq ribs",
		"":         "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContainsItem(t *testing.T) {
	items := []Item{{Name: "Pizza"}, {Name: "Pasta"}}

	if !ContainsItem(items, Item{Name: "pizza"}) {
		t.Fatalf("expected case-insensitive membership")
	}
	if !ContainsItem(items, Item{Name: "  Pasta "}) {
		t.Fatalf("expected whitespace-insensitive membership")
	}
	if ContainsItem(items, Item{Name: "Tacos"}) {
		t.Fatalf("expected miss for absent item")
	}
}

func TestToggleItemAddsAndRemoves(t *testing.T) {
	var items []Item

	items = ToggleItem(items, Item{Name: "Pizza"})
	if len(items) != 1 || items[0].Name != "Pizza" {
		t.Fatalf("expected pizza added, got %+v", items)
	}

	items = ToggleItem(items, Item{Name: "pizza"})
	if len(items) != 0 {
		t.Fatalf("expected pizza removed under normalized match, got %+v", items)
	}
}

func TestToggleItemRoundTripIsNetNoOp(t *testing.T) {
	original := []Item{{Name: "Pizza"}, {Name: "Tacos"}}

	once := ToggleItem(original, Item{Name: "  Pasta "})
	twice := ToggleItem(once, Item{Name: "pasta"})

	if len(twice) != len(original) {
		t.Fatalf("expected round trip to restore length, got %+v", twice)
	}
	for i := range original {
		if !ContainsItem(twice, original[i]) {
			t.Fatalf("expected %q to survive round trip", original[i].Name)
		}
	}
}

func TestToggleItemDoesNotMutateInput(t *testing.T) {
	original := []Item{{Name: "Pizza"}, {Name: "Tacos"}}

	_ = ToggleItem(original, Item{Name: "Pizza"})

	if len(original) != 2 || original[0].Name != "Pizza" || original[1].Name != "Tacos" {
		t.Fatalf("input slice was mutated: %+v", original)
	}
}

func TestFilterVisible(t *testing.T) {
	items := []DailyItem{
		{Name: "Eggs", Location: "Elder", TimeOfDay: "Breakfast"},
		{Name: "Burger", Location: "Sargent", TimeOfDay: "Lunch"},
		{Name: "Steak", Location: "Allison", TimeOfDay: "Dinner"},
		{Name: "Soup", Location: "Plex East", TimeOfDay: "Lunch"},
	}

	got := FilterVisible(items, []string{"Elder", "Sargent"}, []string{"Breakfast", "Lunch"})
	if len(got) != 2 {
		t.Fatalf("expected 2 visible items, got %d", len(got))
	}
	if got[0].Name != "Eggs" || got[1].Name != "Burger" {
		t.Fatalf("expected input order preserved, got %+v", got)
	}

	if got := FilterVisible(items, Locations, TimesOfDay); len(got) != len(items) {
		t.Fatalf("expected full sets to keep everything, got %d", len(got))
	}
	if got := FilterVisible(items, nil, TimesOfDay); len(got) != 0 {
		t.Fatalf("expected empty locations to hide everything, got %d", len(got))
	}
}

func TestCurrentMealPeriod(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{7, "Breakfast"},
		{10, "Breakfast"},
		{11, "Lunch"},
		{15, "Lunch"},
		{16, "Dinner"},
		{20, "Dinner"},
		{22, ""},
		{3, ""},
	}
	for _, tc := range cases {
		at := time.Date(2026, 3, 14, tc.hour, 30, 0, 0, time.UTC)
		if got := CurrentMealPeriod(at); got != tc.want {
			t.Fatalf("CurrentMealPeriod(hour=%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}
