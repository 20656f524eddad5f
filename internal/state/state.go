package state

import (
	"path/filepath"

	"picsort/internal/config"
	"picsort/internal/domain"
)

// Session is the working set and active configuration of one triage session.
// It is owned by the UI loop and never touches the filesystem.
type Session struct {
	Config     config.Config
	Configured bool
	Images     []string
	Index      int
	Bindings   Bindings
}

func NewSession() *Session {
	return &Session{
		Config:   config.DefaultConfig(),
		Bindings: BuildBindings(nil),
	}
}

// SetConfig installs cfg and rebuilds the key bindings.
func (session *Session) SetConfig(cfg config.Config) []Conflict {
	session.Config = cfg.Clone()
	session.Configured = true
	session.Bindings = BuildBindings(session.Config.DestinationFolders)
	return session.Bindings.Conflicts
}

// Reload replaces the working set wholesale.
func (session *Session) Reload(paths []string) {
	session.Images = append([]string(nil), paths...)
	session.Index = 0
}

func (session *Session) Empty() bool {
	return len(session.Images) == 0
}

func (session *Session) Current() (string, bool) {
	if session.Empty() {
		return "", false
	}
	return session.Images[session.Index], true
}

func (session *Session) Next() bool {
	if session.Empty() {
		return false
	}
	session.Index = (session.Index + 1) % len(session.Images)
	return true
}

func (session *Session) Previous() bool {
	if session.Empty() {
		return false
	}
	count := len(session.Images)
	session.Index = (session.Index - 1 + count) % count
	return true
}

// Remove drops path from the working set, preferring the entry at the
// current index, and keeps Index in bounds.
func (session *Session) Remove(path string) bool {
	position := -1
	if current, ok := session.Current(); ok && current == path {
		position = session.Index
	} else {
		for index, candidate := range session.Images {
			if candidate == path {
				position = index
				break
			}
		}
	}
	if position < 0 {
		return false
	}
	session.Images = append(session.Images[:position], session.Images[position+1:]...)
	if position < session.Index {
		session.Index--
	}
	if session.Index >= len(session.Images) {
		session.Index = len(session.Images) - 1
	}
	if session.Index < 0 {
		session.Index = 0
	}
	return true
}

func (session *Session) Display() domain.Display {
	current, ok := session.Current()
	if !ok {
		return domain.Display{NoImage: true}
	}
	return domain.Display{
		Path:     current,
		Name:     filepath.Base(current),
		Position: session.Index + 1,
		Total:    len(session.Images),
	}
}

func (session *Session) Destination(slot string) (domain.Destination, bool) {
	destination, ok := session.Config.DestinationFolders[slot]
	return destination, ok
}

// SlotForKey resolves a pressed character to a destination slot.
func (session *Session) SlotForKey(key string) (string, bool) {
	slot, ok := session.Bindings.Lookup(key)
	if !ok {
		return "", false
	}
	if _, exists := session.Config.DestinationFolders[slot]; !exists {
		return "", false
	}
	return slot, true
}

func (session *Session) SetSourceFolder(folder string) {
	session.Config.SourceFolder = folder
	session.Configured = true
}

// SetDestinationSlot points slot at folder, naming it after the folder and
// keeping any existing shortcut.
func (session *Session) SetDestinationSlot(slot, folder string) domain.Destination {
	if session.Config.DestinationFolders == nil {
		session.Config.DestinationFolders = map[string]domain.Destination{}
	}
	destination := session.Config.DestinationFolders[slot]
	destination.Name = domain.DisplayName(folder)
	destination.Path = folder
	session.Config.DestinationFolders[slot] = destination
	session.Configured = true
	session.Bindings = BuildBindings(session.Config.DestinationFolders)
	return destination
}
