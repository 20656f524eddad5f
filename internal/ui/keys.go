package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Next         key.Binding
	Previous     key.Binding
	Delete       key.Binding
	Help         key.Binding
	Destinations key.Binding
	Settings     key.Binding
	OpenSource   key.Binding
	Reload       key.Binding
	Quit         key.Binding
	Close        key.Binding
	Up           key.Binding
	Down         key.Binding
	Pick         key.Binding
	NewSlot      key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	RemoveRow    key.Binding
	PickPath     key.Binding
	Save         key.Binding
	Choose       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "trash"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Destinations: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "destinations"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "settings"),
		),
		OpenSource: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open folder"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick folder"),
		),
		NewSlot: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new destination"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove destination"),
		),
		PickPath: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "browse"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Choose: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "choose this folder"),
		),
	}
}

func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Previous, keys.Next, keys.Delete, keys.Destinations, keys.Settings, keys.OpenSource, keys.Reload, keys.Help, keys.Quit}
}

func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Previous, keys.Next, keys.Delete},
		{keys.OpenSource, keys.Reload, keys.Destinations, keys.Settings},
		{keys.Help, keys.Close, keys.Quit},
	}
}

func (keys KeyMap) settingsHelp() []key.Binding {
	return []key.Binding{keys.NextField, keys.PrevField, keys.NewSlot, keys.RemoveRow, keys.PickPath, keys.Save, keys.Close}
}

func (keys KeyMap) destinationsHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Pick, keys.NewSlot, keys.Close}
}

func (keys KeyMap) pickerHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/→", "open")),
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		keys.Choose,
		keys.Close,
	}
}
