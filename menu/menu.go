// Package menu holds the domain types for the dining menu client: items,
// daily servings, and the pure helpers the view layers filter with.
package menu

import (
	"strings"
	"time"
)

// Item is the minimal food-item identity. Two items are the same dish when
// their normalized names match, regardless of spacing or case.
type Item struct {
	Name string `json:"name"`
}

// DailyItem is an Item enriched with serving metadata for one day.
type DailyItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StationName string `json:"stationName"`
	Date        string `json:"date"`
	TimeOfDay   string `json:"timeOfDay"`
}

// Locations is the fixed set of serving venues.
var Locations = []string{"Elder", "Sargent", "Allison", "Plex East", "Plex West"}

// TimesOfDay is the fixed set of meal periods, in serving order.
var TimesOfDay = []string{"Breakfast", "Lunch", "Dinner"}

// NormalizeName lowercases and trims an item name. All membership checks on
// favorites go through this.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ContainsItem reports whether items holds item under normalized-name
// equality.
func ContainsItem(items []Item, item Item) bool {
	want := NormalizeName(item.Name)
	for _, i := range items {
		if NormalizeName(i.Name) == want {
			return true
		}
	}
	return false
}

// ToggleItem returns a new slice with item removed when present, appended
// when absent. The input slice is never mutated.
func ToggleItem(items []Item, item Item) []Item {
	want := NormalizeName(item.Name)
	out := make([]Item, 0, len(items)+1)
	found := false
	for _, i := range items {
		if NormalizeName(i.Name) == want {
			found = true
			continue
		}
		out = append(out, i)
	}
	if !found {
		out = append(out, item)
	}
	return out
}

// FilterVisible keeps the daily items served at one of the visible locations
// during one of the visible meal periods, preserving input order.
func FilterVisible(items []DailyItem, locations, times []string) []DailyItem {
	out := make([]DailyItem, 0, len(items))
	for _, item := range items {
		if contains(locations, item.Location) && contains(times, item.TimeOfDay) {
			out = append(out, item)
		}
	}
	return out
}

// CurrentMealPeriod maps a wall-clock time to the meal period being served,
// or "" outside serving hours (callers then show all periods).
func CurrentMealPeriod(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 7 && h < 11:
		return "Breakfast"
	case h >= 11 && h < 16:
		return "Lunch"
	case h >= 16 && h < 21:
		return "Dinner"
	default:
		return ""
	}
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
