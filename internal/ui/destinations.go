package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"picsort/internal/state"
)

type destinationsPanel struct {
	cursor int
}

func (model Model) handleDestinationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	destinations := model.session.Config.DestinationFolders
	slots := state.SortedSlots(destinations)
	switch {
	case key.Matches(msg, model.keys.Close, model.keys.Destinations):
		model.overlay = overlayNone
	case key.Matches(msg, model.keys.Up):
		if model.panel.cursor > 0 {
			model.panel.cursor--
		}
	case key.Matches(msg, model.keys.Down):
		if model.panel.cursor < len(slots)-1 {
			model.panel.cursor++
		}
	case key.Matches(msg, model.keys.Pick):
		if len(slots) == 0 {
			return model, nil
		}
		slot := slots[clamp(model.panel.cursor, 0, len(slots)-1)]
		return model.pickFolder(pickTarget{purpose: pickSlot, slot: slot, start: destinations[slot].Path})
	case key.Matches(msg, model.keys.NewSlot):
		used := make(map[string]bool, len(slots))
		for _, slot := range slots {
			used[slot] = true
		}
		return model.pickFolder(pickTarget{purpose: pickSlot, slot: nextFreeSlot(used)})
	}
	return model, nil
}

// nextFreeSlot returns the smallest positive number not already a slot key.
func nextFreeSlot(used map[string]bool) string {
	for n := 1; ; n++ {
		slot := strconv.Itoa(n)
		if !used[slot] {
			return slot
		}
	}
}
