// Package menusearch narrows a daily item list as the user types,
// tolerating misspellings.
package menusearch

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/goforj/menucache/menu"
)

// source adapts a daily item list to fuzzy.Source; matching is on the name
// field only.
type source []menu.DailyItem

func (s source) String(i int) string {
	return s[i].Name
}

func (s source) Len() int {
	return len(s)
}

// Filter is a pure derivation from (items, query) to the filtered view. An
// empty query returns items unchanged, in original order. A non-empty query
// returns approximate matches on the item name, best match first. Results
// are reproducible for identical inputs.
func Filter(items []menu.DailyItem, query string) []menu.DailyItem {
	if strings.TrimSpace(query) == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, source(items))
	out := make([]menu.DailyItem, 0, len(matches))
	for _, match := range matches {
		out = append(out, items[match.Index])
	}
	return out
}

// Index holds the item list a view is currently searching. It carries no
// state derived from previous lists: Rebuild swaps the list wholesale, so a
// query never runs against items that are no longer displayed.
type Index struct {
	items []menu.DailyItem
}

// NewIndex builds an index over items.
func NewIndex(items []menu.DailyItem) *Index {
	return &Index{items: items}
}

// Rebuild replaces the indexed list. Call it whenever the underlying list
// changes.
func (i *Index) Rebuild(items []menu.DailyItem) {
	i.items = items
}

// Len reports how many items are indexed.
func (i *Index) Len() int {
	return len(i.items)
}

// Search runs Filter against the indexed list.
func (i *Index) Search(query string) []menu.DailyItem {
	return Filter(i.items, query)
}
