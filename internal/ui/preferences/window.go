package preferences

import (
	"strconv"

	"zenpomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	onSave     func(model.Settings)
	focus      *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	saveButton *widget.Button
}

// New creates a settings window. onSave receives the parsed settings; the
// caller is expected to reset the timer with them.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Settings")

	focus := widget.NewEntry()
	shortBreak := widget.NewEntry()
	longBreak := widget.NewEntry()

	form := widget.NewForm(
		widget.NewFormItem("Focus (min)", focus),
		widget.NewFormItem("Short Break (min)", shortBreak),
		widget.NewFormItem("Long Break (min)", longBreak),
	)

	saveButton := widget.NewButton("Save & Reset Timer", nil)
	saveButton.Importance = widget.HighImportance
	closeButton := widget.NewButton("Close", nil)
	buttons := container.NewHBox(layout.NewSpacer(), closeButton, saveButton)

	content := container.NewBorder(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		buttons, nil, nil, form,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(340, 240))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		focus:      focus,
		shortBreak: shortBreak,
		longBreak:  longBreak,
		saveButton: saveButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	closeButton.OnTapped = window.Hide
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.focus.SetText(strconv.Itoa(settings.FocusMinutes))
	prefs.shortBreak.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longBreak.SetText(strconv.Itoa(settings.LongBreakMinutes))
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() model.Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := model.ParseSettings(prefs.focus.Text, prefs.shortBreak.Text, prefs.longBreak.Text)

	// Show what was actually stored, including defaults for rejected input.
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
