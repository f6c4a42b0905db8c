package timekeeper

import (
	"image/color"
	"testing"

	"zenpomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		59:   "00:59",
		60:   "01:00",
		1500: "25:00",
		6000: "100:00",
		-3:   "00:00",
	}
	for seconds, expected := range cases {
		assert.Equal(t, expected, FormatClock(seconds), "seconds=%d", seconds)
	}
}

func TestSnapshot_ClockUsesModeCounter(t *testing.T) {
	countdown := Snapshot{Mode: model.ModeTimer, Remaining: 125, Elapsed: 7}
	stopwatch := Snapshot{Mode: model.ModeStopwatch, Remaining: 125, Elapsed: 7}

	assert.Equal(t, "02:05", countdown.Clock())
	assert.Equal(t, "00:07", stopwatch.Clock())
}

func TestSnapshot_Progress(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{Mode: model.ModePomodoro, Remaining: 1500, Total: 1500}.Progress())
	assert.Equal(t, 0.5, Snapshot{Mode: model.ModeTimer, Remaining: 150, Total: 300}.Progress())
	assert.Equal(t, 1.0, Snapshot{Mode: model.ModeTimer, Remaining: 0, Total: 300}.Progress())
	assert.Equal(t, 1.0, Snapshot{Mode: model.ModeStopwatch, Elapsed: 3}.Progress())
	assert.Equal(t, 0.0, Snapshot{Mode: model.ModeTimer}.Progress())
}

func TestSnapshot_ProgressApproachesOne(t *testing.T) {
	previous := -1.0
	for remaining := 300; remaining >= 0; remaining-- {
		progress := Snapshot{Mode: model.ModeTimer, Remaining: remaining, Total: 300}.Progress()
		assert.Greater(t, progress, previous)
		previous = progress
	}
}

func TestSnapshot_Accent(t *testing.T) {
	assert.Equal(t, AccentStopwatch, Snapshot{Mode: model.ModeStopwatch}.Accent())
	assert.Equal(t, AccentTimer, Snapshot{Mode: model.ModeTimer}.Accent())
	assert.Equal(t, AccentFocus, Snapshot{Mode: model.ModePomodoro, Phase: model.PhaseFocus}.Accent())
	assert.Equal(t, AccentBreak, Snapshot{Mode: model.ModePomodoro, Phase: model.PhaseLongBreak}.Accent())
}

func TestAccent_Color(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}, AccentFocus.Color())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, Accent("tomato").Color())
}

func TestSnapshot_LabelAndTipContext(t *testing.T) {
	focus := Snapshot{Mode: model.ModePomodoro, Phase: model.PhaseFocus}
	rest := Snapshot{Mode: model.ModePomodoro, Phase: model.PhaseShortBreak}
	timer := Snapshot{Mode: model.ModeTimer, Phase: model.PhaseFocus}

	assert.Equal(t, "Focus", focus.Label())
	assert.Equal(t, "Short Break", rest.Label())
	assert.Equal(t, "Timer", timer.Label())
	assert.Equal(t, "Focus Completed", focus.TipContext())
	assert.Equal(t, "Relaxing Break", rest.TipContext())
	assert.Equal(t, "Productivity", timer.TipContext())
}
