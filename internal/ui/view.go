package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"picsort/internal/domain"
	"picsort/internal/state"
)

type uiStyles struct {
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	statusStyle  lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	cursorStyle  lipgloss.Style
	panelBorder  lipgloss.Style
}

func stylesFor(theme string) uiStyles {
	if strings.ToLower(theme) == "light" {
		return uiStyles{
			headerStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
			errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			successStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
			cursorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			panelBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle:  lipgloss.NewStyle().Bold(true),
		mutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		successStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		cursorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		panelBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model.theme)
	var body string
	switch model.overlay {
	case overlayHelp:
		body = renderHelpView(model, styles)
	case overlayDestinations:
		body = renderSlotsPanel(model, styles, model.contentWidth(), model.bodyHeight(), model.panel.cursor)
	case overlaySettings:
		body = renderSettingsView(model, styles)
	case overlayPicker:
		body = renderPickerView(model, styles)
	default:
		body = renderBody(model, styles)
	}
	return strings.Join([]string{renderHeader(model, styles), body, renderFooter(model, styles)}, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	source := "no source folder"
	if folder := model.session.Config.SourceFolder; folder != "" {
		source = breadcrumbs(folder)
	}
	status := styles.mutedStyle.Render("IDLE")
	if model.busy != "" {
		status = styles.statusStyle.Render(model.spinner.View() + " " + model.busy)
	}
	return padLine(styles.headerStyle.Render("picsort")+"  "+source, status, model.width)
}

func renderBody(model Model, styles uiStyles) string {
	height := model.bodyHeight()
	leftWidth, rightWidth, showRight := splitPanels(model.width)
	left := renderImagePanel(model, styles, leftWidth, height)
	if !showRight {
		return left
	}
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("│")
	right := renderSlotsPanel(model, styles, rightWidth, height, -1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
}

func renderImagePanel(model Model, styles uiStyles, width, height int) string {
	contentWidth := maxInt(width-4, 10)
	var lines []string
	display := model.session.Display()
	switch {
	case !model.session.Configured:
		lines = []string{
			styles.headerStyle.Render("No configuration yet"),
			"",
			"ctrl+s  open settings",
			"ctrl+o  choose a source folder",
		}
	case display.NoImage:
		lines = []string{
			styles.headerStyle.Render("No image"),
			display.Counter(),
			"",
			styles.mutedStyle.Render("Looking for " + strings.Join(domain.ImageExtensions(), " ")),
		}
	default:
		lines = []string{
			styles.headerStyle.Render(display.Name),
			styles.statusStyle.Render(display.Counter()),
			"",
			styles.headerStyle.Render("Path"),
			trimStatus(display.Path, contentWidth),
		}
		if model.info.Path == display.Path {
			modified := "-"
			if !model.info.ModTime.IsZero() {
				modified = model.info.ModTime.Format(time.RFC822)
			}
			mime := model.info.MIME
			if mime == "" {
				mime = "-"
			}
			lines = append(lines,
				"",
				styles.headerStyle.Render("Size"), formatSize(model.info.Size),
				"",
				styles.headerStyle.Render("Modified"), modified,
				"",
				styles.headerStyle.Render("Type"), mime,
			)
		}
	}
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth + 2).Render(content)
}

// renderSlotsPanel lists the destinations in slot order. cursor < 0 renders
// the read-only side panel.
func renderSlotsPanel(model Model, styles uiStyles, width, height, cursor int) string {
	contentWidth := maxInt(width-4, 10)
	destinations := model.session.Config.DestinationFolders
	slots := state.SortedSlots(destinations)
	title := "Destinations"
	if cursor >= 0 {
		title = "Destinations  " + styles.mutedStyle.Render("enter re-pick · ctrl+n new · esc close")
	}
	lines := []string{styles.headerStyle.Render(title), ""}
	if len(slots) == 0 {
		lines = append(lines, styles.mutedStyle.Render("No destinations - ctrl+s to add"))
	}
	for index, slot := range slots {
		destination := destinations[slot]
		shortcut := "[" + destination.Key + "]"
		note := ""
		switch bound, ok := model.session.Bindings.Lookup(destination.Key); {
		case destination.Key == "":
			shortcut = "[ ]"
			note = styles.mutedStyle.Render(" no key")
		case !ok || bound != slot:
			note = styles.warnStyle.Render(" conflict")
		}
		line := fmt.Sprintf("%s %-3s %s%s", shortcut, slot, destination.Name, note)
		if cursor >= 0 {
			line += "\n      " + styles.mutedStyle.Render(trimStatus(destination.Path, contentWidth-6))
			if index == cursor {
				line = styles.cursorStyle.Render("› ") + line
			} else {
				line = "  " + line
			}
		}
		lines = append(lines, line)
	}
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth + 2).Render(content)
}

func renderSettingsView(model Model, styles uiStyles) string {
	form := model.form
	lines := []string{
		styles.headerStyle.Render("Settings"),
		"",
		styles.headerStyle.Render("Source folder"),
		fieldMarker(form.focus == 0, styles) + form.source.View(),
		"",
		styles.headerStyle.Render(fmt.Sprintf("  %-5s %-17s %-41s %s", "Slot", "Name", "Folder", "Key")),
	}
	if len(form.rows) == 0 {
		lines = append(lines, styles.mutedStyle.Render("  ctrl+n adds a destination"))
	}
	for index, row := range form.rows {
		first := 1 + index*rowFields
		focused := form.focus >= first && form.focus < first+rowFields
		cells := make([]string, 0, rowFields)
		for _, input := range row.inputs {
			cells = append(cells, input.View())
		}
		lines = append(lines, fieldMarker(focused, styles)+strings.Join(cells, " │ "))
	}
	if form.err != "" {
		lines = append(lines, "", styles.errorStyle.Render(form.err))
	}
	return styles.panelBorder.Width(model.contentWidth() + 2).Render(strings.Join(lines, "\n"))
}

func renderPickerView(model Model, styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render(model.picker.target.title()),
		styles.statusStyle.Render(model.picker.directory()),
		"",
		model.picker.model.View(),
	}
	return styles.panelBorder.Width(model.contentWidth() + 2).Render(strings.Join(lines, "\n"))
}

func renderHelpView(model Model, styles uiStyles) string {
	lines := []string{styles.headerStyle.Render("picsort help"), ""}
	lines = append(lines, model.help.FullHelpView(model.keys.FullHelp()))
	lines = append(lines, "", styles.headerStyle.Render("Destination shortcuts"))
	destinations := model.session.Config.DestinationFolders
	bound := 0
	for _, slot := range state.SortedSlots(destinations) {
		destination := destinations[slot]
		if owner, ok := model.session.Bindings.Lookup(destination.Key); ok && owner == slot {
			lines = append(lines, fmt.Sprintf("%-4s move to %s", destination.Key, destination.Name))
			bound++
		}
	}
	if bound == 0 {
		lines = append(lines, styles.mutedStyle.Render("none configured"))
	}
	lines = append(lines, "", "Press ? or esc to close help")
	return styles.panelBorder.Width(model.contentWidth() + 2).Render(strings.Join(lines, "\n"))
}

func renderFooter(model Model, styles uiStyles) string {
	toastLine := ""
	if model.toast.visible() {
		style := styles.mutedStyle
		switch model.toast.level {
		case toastSuccess:
			style = styles.successStyle
		case toastWarning:
			style = styles.warnStyle
		case toastError:
			style = styles.errorStyle
		}
		toastLine = style.Render(trimStatus(model.toast.text, model.width))
	}
	var keys string
	switch model.overlay {
	case overlaySettings:
		keys = model.help.ShortHelpView(model.keys.settingsHelp())
	case overlayDestinations:
		keys = model.help.ShortHelpView(model.keys.destinationsHelp())
	case overlayPicker:
		keys = model.help.ShortHelpView(model.keys.pickerHelp())
	case overlayHelp:
		keys = model.help.ShortHelpView(nil)
	default:
		keys = model.help.View(model.keys)
	}
	return strings.Join([]string{toastLine, keys}, "\n")
}

func fieldMarker(focused bool, styles uiStyles) string {
	if focused {
		return styles.cursorStyle.Render("› ")
	}
	return "  "
}

func (model Model) contentWidth() int {
	width := model.width
	if width <= 0 {
		width = 80
	}
	return maxInt(width-4, 10)
}

func (model Model) bodyHeight() int {
	return maxInt(model.height-6, 3)
}

func breadcrumbs(path string) string {
	path = filepath.Clean(path)
	if path == "." {
		return "."
	}
	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) == 0 {
		return path
	}
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}
	return strings.Join(parts, " › ")
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func splitPanels(width int) (int, int, bool) {
	if width < 80 {
		return width, 0, false
	}
	left := int(float64(width) * 0.6)
	if left < 40 {
		left = 40
	}
	right := width - left - 1
	if right < 30 {
		return width, 0, false
	}
	return left, right, true
}

func formatSize(size int64) string {
	const unit = 1000
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	value := float64(size) / float64(div)
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f%s", value, units[exp])
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	max := width - 4
	if max <= 0 || ansi.StringWidth(message) <= max {
		return message
	}
	return ansi.Truncate(message, max+len("..."), "...")
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
