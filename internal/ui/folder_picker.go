package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickPurpose int

const (
	pickSource pickPurpose = iota
	pickSlot
	pickFormField
)

// pickTarget says where a chosen folder goes once the user picks one.
type pickTarget struct {
	purpose pickPurpose
	slot    string
	field   int
	start   string
}

func (target pickTarget) title() string {
	switch target.purpose {
	case pickSlot:
		return fmt.Sprintf("Choose folder for slot %s", target.slot)
	case pickFormField:
		return "Choose folder"
	default:
		return "Choose source folder"
	}
}

// folderPicker is the in-terminal fallback used when no native dialog can
// be shown. It browses directories only; the directory being shown is the
// one chosen.
type folderPicker struct {
	model    filepicker.Model
	target   pickTarget
	returnTo overlay
}

func newFolderPicker(start string, height int) (folderPicker, tea.Cmd) {
	browser := filepicker.New()
	browser.DirAllowed = true
	browser.FileAllowed = false
	browser.ShowPermissions = false
	browser.AutoHeight = false
	browser.Height = height
	browser.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("←", "back"))
	browser.KeyMap.Select.SetEnabled(false)
	browser.CurrentDirectory = startDirectory(start)
	return folderPicker{model: browser}, browser.Init()
}

func (picker *folderPicker) resize(height int) {
	picker.model.Height = height
}

func (picker folderPicker) directory() string {
	return picker.model.CurrentDirectory
}

func startDirectory(start string) string {
	if start != "" {
		if info, err := os.Stat(start); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(start); err == nil {
				return abs
			}
			return start
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (model Model) openPicker(target pickTarget) (Model, tea.Cmd) {
	picker, cmd := newFolderPicker(target.start, model.pickerHeight())
	picker.target = target
	picker.returnTo = model.overlay
	model.picker = picker
	model.overlay = overlayPicker
	return model, cmd
}

func (model Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Close):
		model.overlay = model.picker.returnTo
		return model, nil
	case key.Matches(msg, model.keys.Choose):
		model.overlay = model.picker.returnTo
		return model.applyPick(model.picker.target, model.picker.directory())
	}
	return model.updatePicker(msg)
}

func (model Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	model.picker.model, cmd = model.picker.model.Update(msg)
	return model, cmd
}

func (model Model) pickerHeight() int {
	return maxInt(model.height-8, 5)
}
