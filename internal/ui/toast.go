package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastWarning
	toastError
)

type toast struct {
	text  string
	level toastLevel
	seq   int
}

func (current toast) visible() bool {
	return current.text != ""
}

// expire clears the toast only if seq still names it; a newer toast survives
// the timer of an older one.
func (current toast) expire(seq int) toast {
	if seq != current.seq {
		return current
	}
	current.text = ""
	return current
}

func (model Model) notify(level toastLevel, text string) (Model, tea.Cmd) {
	seq := model.toast.seq + 1
	model.toast = toast{text: text, level: level, seq: seq}
	return model, tea.Tick(model.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (model Model) notifyBusy() (Model, tea.Cmd) {
	return model.notify(toastWarning, "Busy: "+model.busy)
}
