package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"picsort/internal/state"
)

const (
	fieldSlot = iota
	fieldName
	fieldPath
	fieldKey
	rowFields
)

type formRow struct {
	inputs [rowFields]textinput.Model
}

// settingsForm edits a state.Form. Field 0 is the source folder; after it
// every destination row contributes rowFields fields.
type settingsForm struct {
	source textinput.Model
	rows   []formRow
	focus  int
	err    string
}

func newInput(placeholder, value string, limit, width int) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = width
	input.SetValue(value)
	return input
}

func newFormRow(row state.DestinationRow) formRow {
	return formRow{inputs: [rowFields]textinput.Model{
		newInput("slot", row.Slot, 8, 4),
		newInput("name", row.Name, 64, 16),
		newInput("folder", row.Path, 0, 40),
		newInput("key", row.Key, 1, 3),
	}}
}

func newSettingsForm(form state.Form) (settingsForm, tea.Cmd) {
	settings := settingsForm{source: newInput("source folder", form.SourceFolder, 0, 60)}
	for _, row := range form.Rows {
		settings.rows = append(settings.rows, newFormRow(row))
	}
	return settings, settings.focusField(0)
}

func (form *settingsForm) fieldCount() int {
	return 1 + len(form.rows)*rowFields
}

func (form *settingsForm) input(field int) *textinput.Model {
	if field == 0 {
		return &form.source
	}
	row := (field - 1) / rowFields
	if field < 0 || row >= len(form.rows) {
		return nil
	}
	return &form.rows[row].inputs[(field-1)%rowFields]
}

func (form *settingsForm) focusField(field int) tea.Cmd {
	if current := form.input(form.focus); current != nil {
		current.Blur()
	}
	count := form.fieldCount()
	form.focus = ((field % count) + count) % count
	return form.input(form.focus).Focus()
}

func (form *settingsForm) move(delta int) tea.Cmd {
	return form.focusField(form.focus + delta)
}

func (form *settingsForm) addRow() tea.Cmd {
	used := make(map[string]bool, len(form.rows))
	for _, row := range form.rows {
		used[strings.TrimSpace(row.inputs[fieldSlot].Value())] = true
	}
	form.rows = append(form.rows, newFormRow(state.DestinationRow{Slot: nextFreeSlot(used)}))
	return form.focusField(1 + (len(form.rows)-1)*rowFields + fieldPath)
}

func (form *settingsForm) removeRow() tea.Cmd {
	if form.focus == 0 || len(form.rows) == 0 {
		return nil
	}
	row := (form.focus - 1) / rowFields
	form.rows = append(form.rows[:row], form.rows[row+1:]...)
	return form.focusField(min(form.focus, form.fieldCount()-1))
}

// pathField maps the focused field to the folder field of the same row, or
// to the source folder when the source field is focused.
func (form *settingsForm) pathField() int {
	if form.focus == 0 {
		return 0
	}
	row := (form.focus - 1) / rowFields
	return 1 + row*rowFields + fieldPath
}

func (form *settingsForm) setPath(field int, folder string) {
	if input := form.input(field); input != nil {
		input.SetValue(folder)
	}
}

func (form *settingsForm) value() state.Form {
	submitted := state.Form{SourceFolder: form.source.Value()}
	for _, row := range form.rows {
		submitted.Rows = append(submitted.Rows, state.DestinationRow{
			Slot: row.inputs[fieldSlot].Value(),
			Name: row.inputs[fieldName].Value(),
			Path: row.inputs[fieldPath].Value(),
			Key:  row.inputs[fieldKey].Value(),
		})
	}
	return submitted
}

func (form *settingsForm) update(msg tea.Msg) tea.Cmd {
	input := form.input(form.focus)
	if input == nil {
		return nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return cmd
}

func (model Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Close):
		model.overlay = overlayNone
		return model.notify(toastInfo, "Settings discarded")
	case key.Matches(msg, model.keys.Save):
		return model.saveConfiguration(model.form.value())
	case key.Matches(msg, model.keys.NextField):
		return model, model.form.move(1)
	case key.Matches(msg, model.keys.PrevField):
		return model, model.form.move(-1)
	case key.Matches(msg, model.keys.NewSlot):
		return model, model.form.addRow()
	case key.Matches(msg, model.keys.RemoveRow):
		return model, model.form.removeRow()
	case key.Matches(msg, model.keys.PickPath):
		field := model.form.pathField()
		start := model.form.input(field).Value()
		return model.pickFolder(pickTarget{purpose: pickFormField, field: field, start: start})
	}
	return model, model.form.update(msg)
}
