package state

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"picsort/internal/domain"
)

// WinnerReserved marks a destination whose shortcut collides with a built-in key.
const WinnerReserved = "reserved"

var reservedKeys = map[string]bool{
	"x": true,
	"X": true,
	"?": true,
}

func IsReservedKey(key string) bool {
	return reservedKeys[key]
}

type Conflict struct {
	Key    string
	Slot   string
	Winner string
}

// Bindings maps a shortcut character to the slot it moves images into.
// When two slots share a character the first in SortedSlots order keeps it.
type Bindings struct {
	keys      map[string]string
	Conflicts []Conflict
}

func BuildBindings(destinations map[string]domain.Destination) Bindings {
	bindings := Bindings{keys: make(map[string]string, len(destinations))}
	for _, slot := range SortedSlots(destinations) {
		key := destinations[slot].Key
		if utf8.RuneCountInString(key) != 1 {
			continue
		}
		if reservedKeys[key] {
			bindings.Conflicts = append(bindings.Conflicts, Conflict{Key: key, Slot: slot, Winner: WinnerReserved})
			continue
		}
		if winner, taken := bindings.keys[key]; taken {
			bindings.Conflicts = append(bindings.Conflicts, Conflict{Key: key, Slot: slot, Winner: winner})
			continue
		}
		bindings.keys[key] = slot
	}
	return bindings
}

func (bindings Bindings) Lookup(key string) (string, bool) {
	slot, ok := bindings.keys[key]
	return slot, ok
}

func (bindings Bindings) Len() int {
	return len(bindings.keys)
}

// SortedSlots orders slot keys naturally: numbers by value first, then the
// rest lexically.
func SortedSlots(destinations map[string]domain.Destination) []string {
	slots := make([]string, 0, len(destinations))
	for slot := range destinations {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		return slotLess(slots[i], slots[j])
	})
	return slots
}

func slotLess(left, right string) bool {
	leftNum, leftErr := strconv.Atoi(left)
	rightNum, rightErr := strconv.Atoi(right)
	switch {
	case leftErr == nil && rightErr == nil:
		if leftNum != rightNum {
			return leftNum < rightNum
		}
		return left < right
	case leftErr == nil:
		return true
	case rightErr == nil:
		return false
	default:
		return left < right
	}
}
