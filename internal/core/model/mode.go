package model

// Mode selects which counter the timer drives.
type Mode string

const (
	ModePomodoro  Mode = "pomodoro"
	ModeStopwatch Mode = "stopwatch"
	ModeTimer     Mode = "timer"
)

// Modes lists every mode in navigation order.
var Modes = []Mode{ModePomodoro, ModeStopwatch, ModeTimer}

// Label returns the display name of the mode.
func (mode Mode) Label() string {
	switch mode {
	case ModePomodoro:
		return "Pomodoro"
	case ModeStopwatch:
		return "Stopwatch"
	case ModeTimer:
		return "Timer"
	default:
		return string(mode)
	}
}

// Countdown reports whether the mode counts down towards zero.
func (mode Mode) Countdown() bool {
	return mode != ModeStopwatch
}

// Phase is the Pomodoro sub-state. It only matters in ModePomodoro.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Phases lists every Pomodoro phase in cycle order.
var Phases = []Phase{PhaseFocus, PhaseShortBreak, PhaseLongBreak}

// Label returns the display name of the phase.
func (phase Phase) Label() string {
	switch phase {
	case PhaseFocus:
		return "Focus"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return string(phase)
	}
}

// ShortLabel returns the compact label used on the phase selector.
func (phase Phase) ShortLabel() string {
	switch phase {
	case PhaseShortBreak:
		return "Short"
	case PhaseLongBreak:
		return "Long"
	default:
		return "Focus"
	}
}
