package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"picsort/internal/config"
	"picsort/internal/domain"
	"picsort/internal/services"
	"picsort/internal/state"
)

func (model Model) handleConfigLoaded(msg configLoadedMsg) (Model, tea.Cmd) {
	model.busy = ""
	var cmds []tea.Cmd
	switch {
	case msg.err != nil:
		model.logger.Error("load configuration", zap.Error(msg.err))
		var cmd tea.Cmd
		model, cmd = model.notify(toastError, fmt.Sprintf("Cannot load configuration: %v", msg.err))
		cmds = append(cmds, cmd)
	case msg.result.Found:
		conflicts := model.session.SetConfig(msg.result.Config)
		if len(conflicts) > 0 {
			var cmd tea.Cmd
			model, cmd = model.notify(toastWarning, conflictSummary(conflicts))
			cmds = append(cmds, cmd)
			model.logConflicts(conflicts)
		}
	default:
		model.logger.Info("no configuration", zap.String("problem", msg.result.Problem))
	}

	if model.sourceOverride != "" {
		model.session.SetSourceFolder(model.sourceOverride)
	}
	if model.session.Config.SourceFolder != "" {
		var cmd tea.Cmd
		model, cmd = model.reload()
		cmds = append(cmds, cmd)
	}
	return model, tea.Batch(cmds...)
}

// reload lists the source folder and replaces the working set with the result.
func (model Model) reload() (Model, tea.Cmd) {
	folder := model.session.Config.SourceFolder
	if folder == "" {
		model.session.Reload(nil)
		return model, nil
	}
	if model.busy != "" {
		return model.notifyBusy()
	}
	model.busy = "Loading " + domain.DisplayName(folder)
	return model, tea.Batch(model.listCmd(folder), model.spinner.Tick)
}

func (model Model) handleListResult(msg listResultMsg) (Model, tea.Cmd) {
	model.busy = ""
	if msg.err != nil {
		return model.notify(toastError, fmt.Sprintf("Reload failed: %v", msg.err))
	}
	model.session.Reload(msg.result.Paths)
	model.info = services.ImageInfo{}
	model.logger.Debug("working set replaced",
		zap.String("folder", msg.result.Folder),
		zap.Int("images", len(msg.result.Paths)),
		zap.String("problem", msg.result.Problem))
	return model, model.describeCmd()
}

// moveCurrentTo asks for the current image to be moved into slot's folder.
// The entry leaves the working set only once the move is confirmed.
func (model Model) moveCurrentTo(slot string) (Model, tea.Cmd) {
	current, ok := model.session.Current()
	if !ok {
		return model, nil
	}
	destination, ok := model.session.Destination(slot)
	if !ok {
		return model, nil
	}
	if model.busy != "" {
		return model.notifyBusy()
	}
	request := services.ActionRequest{
		Type:        services.ActionMove,
		SourcePath:  current,
		Destination: destination.Path,
	}
	model.busy = fmt.Sprintf("Moving %s to %s", filepath.Base(current), destination.Name)
	return model, tea.Batch(model.actionCmd(request, destination.Name), model.spinner.Tick)
}

func (model Model) deleteCurrent() (Model, tea.Cmd) {
	current, ok := model.session.Current()
	if !ok {
		return model, nil
	}
	if model.busy != "" {
		return model.notifyBusy()
	}
	request := services.ActionRequest{Type: services.ActionTrash, SourcePath: current}
	model.busy = fmt.Sprintf("Trashing %s", filepath.Base(current))
	return model, tea.Batch(model.actionCmd(request, ""), model.spinner.Tick)
}

func (model Model) handleActionResult(msg actionResultMsg) (Model, tea.Cmd) {
	model.busy = ""
	if msg.err != nil {
		verb := "Move"
		if msg.request.Type == services.ActionTrash {
			verb = "Delete"
		}
		return model.notify(toastError, fmt.Sprintf("%s failed: %v", verb, msg.err))
	}
	model.session.Remove(msg.request.SourcePath)
	text := "Moved to trash"
	if msg.request.Type == services.ActionMove {
		text = "Moved to " + msg.label
	}
	model, cmd := model.notify(toastSuccess, text)
	return model, tea.Batch(cmd, model.describeCmd())
}

func (model Model) updateSourceFolder(folder string) (Model, tea.Cmd) {
	model.session.SetSourceFolder(folder)
	return model.persist(saveSource, "")
}

func (model Model) updateDestinationSlot(slot, folder string) (Model, tea.Cmd) {
	model.session.SetDestinationSlot(slot, folder)
	return model.persist(saveSlot, slot)
}

// persist saves the session's configuration; the result is handled by
// handleConfigSaved according to purpose.
func (model Model) persist(purpose savePurpose, slot string) (Model, tea.Cmd) {
	if model.busy != "" {
		return model.notifyBusy()
	}
	cfg := model.session.Config.Clone()
	model.busy = "Saving configuration"
	return model, tea.Batch(model.saveCmd(purpose, slot, cfg), model.spinner.Tick)
}

// saveConfiguration validates the submitted form and persists it. The active
// configuration is replaced only after the save succeeds.
func (model Model) saveConfiguration(form state.Form) (Model, tea.Cmd) {
	cfg, err := state.BuildConfig(form)
	if err != nil {
		model.form.err = err.Error()
		return model.notify(toastError, err.Error())
	}
	if model.busy != "" {
		return model.notifyBusy()
	}
	model.form.err = ""
	model.busy = "Saving configuration"
	return model, tea.Batch(model.saveCmd(saveForm, "", cfg), model.spinner.Tick)
}

func (model Model) handleConfigSaved(msg configSavedMsg) (Model, tea.Cmd) {
	model.busy = ""
	switch msg.purpose {
	case saveSource:
		var cmds []tea.Cmd
		if msg.err != nil {
			var cmd tea.Cmd
			model, cmd = model.notify(toastError, fmt.Sprintf("Save failed: %v", msg.err))
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		model, cmd = model.reload()
		cmds = append(cmds, cmd)
		return model, tea.Batch(cmds...)
	case saveSlot:
		if msg.err != nil {
			return model.notify(toastError, fmt.Sprintf("Save failed: %v", msg.err))
		}
		destination, _ := model.session.Destination(msg.slot)
		return model.notify(toastSuccess, fmt.Sprintf("Slot %s now moves to %s", msg.slot, destination.Name))
	default:
		if msg.err != nil {
			model.form.err = msg.err.Error()
			return model.notify(toastError, fmt.Sprintf("Save failed: %v", msg.err))
		}
		model.session.SetConfig(msg.config)
		model.overlay = overlayNone
		var cmds []tea.Cmd
		var cmd tea.Cmd
		model, cmd = model.notify(toastSuccess, "Settings saved")
		cmds = append(cmds, cmd)
		model, cmd = model.reload()
		cmds = append(cmds, cmd)
		return model, tea.Batch(cmds...)
	}
}

func (model Model) pickFolder(target pickTarget) (Model, tea.Cmd) {
	if model.busy != "" {
		return model.notifyBusy()
	}
	model.busy = "Waiting for folder selection"
	request := services.PickRequest{Title: target.title(), Start: target.start}
	return model, tea.Batch(model.pickCmd(target, request), model.spinner.Tick)
}

func (model Model) handlePickResult(msg pickResultMsg) (Model, tea.Cmd) {
	model.busy = ""
	if errors.Is(msg.err, services.ErrPickerUnavailable) {
		return model.openPicker(msg.target)
	}
	if msg.err != nil {
		return model.notify(toastError, fmt.Sprintf("Folder selection failed: %v", msg.err))
	}
	if !msg.result.Picked {
		return model, nil
	}
	return model.applyPick(msg.target, msg.result.Path)
}

func (model Model) applyPick(target pickTarget, folder string) (Model, tea.Cmd) {
	switch target.purpose {
	case pickSlot:
		return model.updateDestinationSlot(target.slot, folder)
	case pickFormField:
		model.overlay = overlaySettings
		model.form.setPath(target.field, folder)
		return model, nil
	default:
		return model.updateSourceFolder(folder)
	}
}

func (model Model) describeCmd() tea.Cmd {
	current, ok := model.session.Current()
	if !ok {
		return nil
	}
	files, ctx := model.files, model.ctx
	return func() tea.Msg {
		info, err := files.Describe(ctx, services.DescribeRequest{Path: current})
		return describeMsg{info: info, err: err}
	}
}

func (model Model) loadConfigCmd() tea.Cmd {
	files, ctx := model.files, model.ctx
	return func() tea.Msg {
		result, err := files.Load(ctx)
		return configLoadedMsg{result: result, err: err}
	}
}

func (model Model) listCmd(folder string) tea.Cmd {
	files, ctx := model.files, model.ctx
	return func() tea.Msg {
		result, err := files.List(ctx, services.ListRequest{Folder: folder})
		return listResultMsg{result: result, err: err}
	}
}

func (model Model) actionCmd(request services.ActionRequest, label string) tea.Cmd {
	files, ctx := model.files, model.ctx
	return func() tea.Msg {
		result, err := files.Execute(ctx, request)
		return actionResultMsg{request: request, label: label, result: result, err: err}
	}
}

func (model Model) saveCmd(purpose savePurpose, slot string, cfg config.Config) tea.Cmd {
	files, ctx := model.files, model.ctx
	return func() tea.Msg {
		err := files.Save(ctx, cfg)
		return configSavedMsg{purpose: purpose, slot: slot, config: cfg, err: err}
	}
}

func (model Model) pickCmd(target pickTarget, request services.PickRequest) tea.Cmd {
	files, ctx := model.files, model.ctx
	return func() tea.Msg {
		result, err := files.PickFolder(ctx, request)
		return pickResultMsg{target: target, result: result, err: err}
	}
}

func (model Model) logConflicts(conflicts []state.Conflict) {
	for _, conflict := range conflicts {
		model.logger.Warn("shortcut conflict",
			zap.String("key", conflict.Key),
			zap.String("slot", conflict.Slot),
			zap.String("winner", conflict.Winner))
	}
}

func conflictSummary(conflicts []state.Conflict) string {
	parts := make([]string, 0, len(conflicts))
	for _, conflict := range conflicts {
		if conflict.Winner == state.WinnerReserved {
			parts = append(parts, fmt.Sprintf("%q is reserved (slot %s)", conflict.Key, conflict.Slot))
			continue
		}
		parts = append(parts, fmt.Sprintf("%q used by slot %s and %s", conflict.Key, conflict.Winner, conflict.Slot))
	}
	return "Shortcut conflict: " + strings.Join(parts, "; ")
}
