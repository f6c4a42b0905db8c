package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// TimerDuration is the fixed Timer-mode length. There is no input for a custom
// duration, so it is deliberately not part of Settings.
const TimerDuration = 5 * time.Minute

// MaxMinutes bounds a phase length so its duration in seconds fits an int32.
const MaxMinutes = math.MaxInt32 / 60

const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// Settings holds the user-editable Pomodoro phase lengths in minutes.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
}

// DefaultSettings returns the 25/5/15 Pomodoro cycle.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      DefaultFocusMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
	}
}

// ParseSettings builds Settings from raw form input. Any field that is not a
// positive integer up to MaxMinutes falls back to its default.
func ParseSettings(focus, shortBreak, longBreak string) Settings {
	return Settings{
		FocusMinutes:      parseMinutes(focus, DefaultFocusMinutes),
		ShortBreakMinutes: parseMinutes(shortBreak, DefaultShortBreakMinutes),
		LongBreakMinutes:  parseMinutes(longBreak, DefaultLongBreakMinutes),
	}
}

// Normalize replaces out-of-range fields with their defaults.
func (settings Settings) Normalize() Settings {
	settings.FocusMinutes = validMinutes(settings.FocusMinutes, DefaultFocusMinutes)
	settings.ShortBreakMinutes = validMinutes(settings.ShortBreakMinutes, DefaultShortBreakMinutes)
	settings.LongBreakMinutes = validMinutes(settings.LongBreakMinutes, DefaultLongBreakMinutes)
	return settings
}

// PhaseDuration returns the configured length of a Pomodoro phase.
func (settings Settings) PhaseDuration(phase Phase) time.Duration {
	settings = settings.Normalize()
	switch phase {
	case PhaseShortBreak:
		return time.Duration(settings.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(settings.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(settings.FocusMinutes) * time.Minute
	}
}

func parseMinutes(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return validMinutes(parsed, fallback)
}

func validMinutes(minutes, fallback int) int {
	if minutes <= 0 || minutes > MaxMinutes {
		return fallback
	}
	return minutes
}
