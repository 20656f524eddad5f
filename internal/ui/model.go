package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"picsort/internal/services"
	"picsort/internal/state"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayDestinations
	overlaySettings
	overlayPicker
)

type Model struct {
	ctx            context.Context
	session        *state.Session
	files          services.FileAccess
	logger         *zap.Logger
	keys           KeyMap
	help           help.Model
	spinner        spinner.Model
	theme          string
	toast          toast
	toastTTL       time.Duration
	overlay        overlay
	busy           string
	info           services.ImageInfo
	panel          destinationsPanel
	form           settingsForm
	picker         folderPicker
	sourceOverride string
	width          int
	height         int
}

// NewModel starts in the loading state; Init issues the configuration load.
func NewModel(session *state.Session, files services.FileAccess, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		ctx:      context.Background(),
		session:  session,
		files:    files,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		theme:    "dark",
		toastTTL: 2 * time.Second,
		busy:     "Loading configuration",
		width:    100,
		height:   30,
	}
}

func (model Model) WithContext(ctx context.Context) Model {
	if ctx != nil {
		model.ctx = ctx
	}
	return model
}

func (model Model) WithTheme(theme string) Model {
	if theme != "" {
		model.theme = theme
	}
	return model
}

func (model Model) WithToastDuration(duration time.Duration) Model {
	if duration > 0 {
		model.toastTTL = duration
	}
	return model
}

// WithSourceFolder overrides the configured source folder for this session.
// The override is only persisted if the configuration is saved later.
func (model Model) WithSourceFolder(folder string) Model {
	model.sourceOverride = folder
	return model
}

func (model Model) Init() tea.Cmd {
	return tea.Batch(model.loadConfigCmd(), model.spinner.Tick)
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.help.Width = typed.Width
		model.picker.resize(model.pickerHeight())
		return model, nil
	case spinner.TickMsg:
		if model.busy == "" {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(typed)
		return model, cmd
	case configLoadedMsg:
		return model.handleConfigLoaded(typed)
	case listResultMsg:
		return model.handleListResult(typed)
	case actionResultMsg:
		return model.handleActionResult(typed)
	case configSavedMsg:
		return model.handleConfigSaved(typed)
	case pickResultMsg:
		return model.handlePickResult(typed)
	case describeMsg:
		current, ok := model.session.Current()
		if ok && typed.err == nil && typed.info.Path == current {
			model.info = typed.info
		}
		return model, nil
	case toastExpiredMsg:
		model.toast = model.toast.expire(typed.seq)
		return model, nil
	default:
		if model.overlay == overlayPicker {
			return model.updatePicker(msg)
		}
		return model, nil
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, model.keys.Quit) {
		return model, tea.Quit
	}
	switch model.overlay {
	case overlayHelp:
		if key.Matches(msg, model.keys.Help, model.keys.Close) {
			model.overlay = overlayNone
		}
		return model, nil
	case overlayDestinations:
		return model.handleDestinationsKey(msg)
	case overlaySettings:
		return model.handleSettingsKey(msg)
	case overlayPicker:
		return model.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, model.keys.Next):
		if model.session.Next() {
			return model, model.describeCmd()
		}
		return model, nil
	case key.Matches(msg, model.keys.Previous):
		if model.session.Previous() {
			return model, model.describeCmd()
		}
		return model, nil
	case key.Matches(msg, model.keys.Delete):
		return model.deleteCurrent()
	case key.Matches(msg, model.keys.Help):
		model.overlay = overlayHelp
		return model, nil
	case key.Matches(msg, model.keys.Destinations):
		model.panel = destinationsPanel{}
		model.overlay = overlayDestinations
		return model, nil
	case key.Matches(msg, model.keys.Settings):
		var cmd tea.Cmd
		model.form, cmd = newSettingsForm(state.FormFromConfig(model.session.Config))
		model.overlay = overlaySettings
		return model, cmd
	case key.Matches(msg, model.keys.OpenSource):
		return model.pickFolder(pickTarget{purpose: pickSource, start: model.session.Config.SourceFolder})
	case key.Matches(msg, model.keys.Reload):
		if model.session.Config.SourceFolder == "" {
			return model.notify(toastInfo, "No source folder - press ctrl+o to choose one")
		}
		return model.reload()
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		if slot, ok := model.session.SlotForKey(string(msg.Runes)); ok {
			return model.moveCurrentTo(slot)
		}
	}
	return model, nil
}
