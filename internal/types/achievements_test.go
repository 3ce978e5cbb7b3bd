package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementsInventory_EntriesKeepCallerOrder(t *testing.T) {
	inv := AchievementsInventory{
		{Name: "Zebra", Items: []AchievementItem{{Text: "z1"}, {Text: "z2"}}},
		{Name: "Alpha", Items: []AchievementItem{{Text: "a1"}}},
	}

	entries := inv.Entries()

	require.Len(t, entries, 2)
	assert.Equal(t, "Zebra", entries[0].Category)
	assert.Equal(t, []string{"z1", "z2"}, entries[0].Items)
	assert.Equal(t, "Alpha", entries[1].Category)
}

func TestFlatAchievements_EntriesSortedByName(t *testing.T) {
	flat := FlatAchievements{
		"Zebra": {"z1"},
		"Alpha": {"a1", "a2"},
		"Mango": {"m1"},
	}

	entries := flat.Entries()

	require.Len(t, entries, 3)
	assert.Equal(t, "Alpha", entries[0].Category)
	assert.Equal(t, "Mango", entries[1].Category)
	assert.Equal(t, "Zebra", entries[2].Category)
	assert.Equal(t, []string{"a1", "a2"}, entries[0].Items)
}

func TestEntries_EmptySources(t *testing.T) {
	assert.Empty(t, AchievementsInventory{}.Entries())
	assert.Empty(t, FlatAchievements{}.Entries())
}

func TestTierOrder(t *testing.T) {
	assert.Equal(t, 0, TierStrong.Order())
	assert.Equal(t, 1, TierGood.Order())
	assert.Equal(t, 2, TierStretch.Order())
	assert.Equal(t, 3, TierLongShot.Order())
	assert.Equal(t, 3, Tier("nonsense").Order())
}
