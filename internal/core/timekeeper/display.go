package timekeeper

import (
	"fmt"
	"image/color"

	"zenpomodoro/internal/core/model"
)

// Accent is the colour identifier of the current mode and phase.
type Accent string

const (
	AccentStopwatch Accent = "#60a5fa"
	AccentTimer     Accent = "#fbbf24"
	AccentFocus     Accent = "#ff6347"
	AccentBreak     Accent = "#66cdaa"
)

// Color converts the accent to an opaque colour.
func (accent Accent) Color() color.NRGBA {
	var red, green, blue uint8
	if _, err := fmt.Sscanf(string(accent), "#%02x%02x%02x", &red, &green, &blue); err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{R: red, G: green, B: blue, A: 255}
}

// Snapshot is a copy of the timer state for presentation.
// Remaining, Total and Elapsed are whole seconds.
type Snapshot struct {
	Mode      model.Mode
	Phase     model.Phase
	Remaining int
	Total     int
	Elapsed   int
	Running   bool
}

// Clock returns the MM:SS reading of the counter that the mode displays.
func (snapshot Snapshot) Clock() string {
	if snapshot.Mode == model.ModeStopwatch {
		return FormatClock(snapshot.Elapsed)
	}
	return FormatClock(snapshot.Remaining)
}

// Progress returns the completed fraction of a countdown in [0, 1].
// The stopwatch ring is always full.
func (snapshot Snapshot) Progress() float64 {
	if snapshot.Mode == model.ModeStopwatch {
		return 1
	}
	if snapshot.Total <= 0 {
		return 0
	}
	progress := float64(snapshot.Total-snapshot.Remaining) / float64(snapshot.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Accent maps the mode and phase to an accent colour.
func (snapshot Snapshot) Accent() Accent {
	switch {
	case snapshot.Mode == model.ModeStopwatch:
		return AccentStopwatch
	case snapshot.Mode == model.ModeTimer:
		return AccentTimer
	case snapshot.Phase == model.PhaseFocus:
		return AccentFocus
	default:
		return AccentBreak
	}
}

// Label returns the caption shown under the clock.
func (snapshot Snapshot) Label() string {
	if snapshot.Mode == model.ModePomodoro {
		return snapshot.Phase.Label()
	}
	return snapshot.Mode.Label()
}

// TipContext returns the context sent with a manually requested tip.
func (snapshot Snapshot) TipContext() string {
	if snapshot.Mode != model.ModePomodoro {
		return "Productivity"
	}
	if snapshot.Phase == model.PhaseFocus {
		return TipContextFocusCompleted
	}
	return "Relaxing Break"
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes are not capped.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
