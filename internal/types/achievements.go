// Package types provides type definitions for structured data exchanged
// between the scoring engine and its callers.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// AchievementItem is a single recorded achievement within a category.
type AchievementItem struct {
	Text        string `json:"text"`
	LearnedDate string `json:"learned_date,omitempty"` // YYYY-MM-DD, optional
}

// AchievementCategory groups achievement items under a category name.
type AchievementCategory struct {
	Name  string            `json:"name"`
	Items []AchievementItem `json:"items"`
}

// AchievementsInventory is the structured form of a candidate's achievements.
// The engine treats it as read-only; iteration follows caller order.
type AchievementsInventory []AchievementCategory

// FlatAchievements is the flattened form: category name to item texts.
// Both forms satisfy AchievementSource, so the scorer accepts either.
type FlatAchievements map[string][]string

// CategoryEntry is the single iteration shape the scorer works with.
type CategoryEntry struct {
	Category string
	Items    []string
}

// AchievementSource yields achievement items grouped by category in a
// deterministic order. The scorer's tie-breaking ("first encountered wins")
// is defined over this order.
type AchievementSource interface {
	Entries() []CategoryEntry
}

// Entries returns categories in caller order with item texts in caller order.
func (inv AchievementsInventory) Entries() []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(inv))
	for _, cat := range inv {
		items := make([]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			items = append(items, item.Text)
		}
		entries = append(entries, CategoryEntry{Category: cat.Name, Items: items})
	}
	return entries
}

// Entries returns categories sorted by name. Go maps have no insertion
// order, so sorting is what keeps flat-form scoring deterministic.
func (fa FlatAchievements) Entries() []CategoryEntry {
	names := make([]string, 0, len(fa))
	for name := range fa {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]CategoryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, CategoryEntry{Category: name, Items: fa[name]})
	}
	return entries
}
