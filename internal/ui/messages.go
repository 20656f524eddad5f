package ui

import (
	"picsort/internal/config"
	"picsort/internal/services"
)

type configLoadedMsg struct {
	result services.ConfigResult
	err    error
}

type listResultMsg struct {
	result services.ListResult
	err    error
}

// actionResultMsg reports a move or trash. label is the destination name
// captured when the request was issued.
type actionResultMsg struct {
	request services.ActionRequest
	label   string
	result  services.ActionResult
	err     error
}

type savePurpose int

const (
	saveSource savePurpose = iota
	saveSlot
	saveForm
)

type configSavedMsg struct {
	purpose savePurpose
	slot    string
	config  config.Config
	err     error
}

type pickResultMsg struct {
	target pickTarget
	result services.PickResult
	err    error
}

type describeMsg struct {
	info services.ImageInfo
	err  error
}

type toastExpiredMsg struct {
	seq int
}
