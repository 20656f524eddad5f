package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picsort/internal/domain"
)

func TestBindingsFirstSlotWins(t *testing.T) {
	bindings := BuildBindings(map[string]domain.Destination{
		"10": {Path: "/ten", Key: "a"},
		"2":  {Path: "/two", Key: "a"},
		"b":  {Path: "/bee", Key: "a"},
	})

	slot, ok := bindings.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "2", slot)
	assert.Equal(t, 1, bindings.Len())
	assert.ElementsMatch(t, []Conflict{
		{Key: "a", Slot: "10", Winner: "2"},
		{Key: "a", Slot: "b", Winner: "2"},
	}, bindings.Conflicts)
}

func TestBindingsNeverBindReservedKeys(t *testing.T) {
	bindings := BuildBindings(map[string]domain.Destination{
		"1": {Path: "/one", Key: "x"},
		"2": {Path: "/two", Key: "X"},
		"3": {Path: "/three", Key: "?"},
		"4": {Path: "/four", Key: "k"},
	})

	for _, key := range []string{"x", "X", "?"} {
		_, ok := bindings.Lookup(key)
		assert.False(t, ok, key)
	}
	assert.Len(t, bindings.Conflicts, 3)
	for _, conflict := range bindings.Conflicts {
		assert.Equal(t, WinnerReserved, conflict.Winner)
	}
	slot, ok := bindings.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, "4", slot)
}

func TestBindingsAreCaseSensitive(t *testing.T) {
	bindings := BuildBindings(map[string]domain.Destination{
		"1": {Path: "/one", Key: "a"},
		"2": {Path: "/two", Key: "A"},
	})
	lower, _ := bindings.Lookup("a")
	upper, _ := bindings.Lookup("A")
	assert.Equal(t, "1", lower)
	assert.Equal(t, "2", upper)
	assert.Empty(t, bindings.Conflicts)
}

func TestBindingsSkipMissingOrLongKeys(t *testing.T) {
	bindings := BuildBindings(map[string]domain.Destination{
		"1": {Path: "/one"},
		"2": {Path: "/two", Key: "ab"},
		"3": {Path: "/three", Key: "é"},
	})
	assert.Equal(t, 1, bindings.Len())
	slot, ok := bindings.Lookup("é")
	require.True(t, ok)
	assert.Equal(t, "3", slot)
}

func TestSortedSlotsNaturalOrder(t *testing.T) {
	slots := SortedSlots(map[string]domain.Destination{
		"b": {}, "10": {}, "2": {}, "a": {}, "1": {},
	})
	assert.Equal(t, []string{"1", "2", "10", "a", "b"}, slots)
}
