package preferences

import (
	"testing"

	"zenpomodoro/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_ShowsCurrentSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, model.Settings{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30}, nil)

	assert.Equal(t, "50", prefs.focus.Text)
	assert.Equal(t, "10", prefs.shortBreak.Text)
	assert.Equal(t, "30", prefs.longBreak.Text)
}

func TestWindow_SaveParsesEntries(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	var saved []model.Settings
	prefs := New(app, model.DefaultSettings(), func(settings model.Settings) {
		saved = append(saved, settings)
	})
	prefs.Show()

	prefs.focus.SetText("45")
	prefs.shortBreak.SetText("abc")
	prefs.longBreak.SetText("20")
	test.Tap(prefs.saveButton)

	require.Len(t, saved, 1)
	assert.Equal(t, model.Settings{FocusMinutes: 45, ShortBreakMinutes: 5, LongBreakMinutes: 20}, saved[0])
	assert.Equal(t, saved[0], prefs.Settings())
	assert.Equal(t, "5", prefs.shortBreak.Text)
}
