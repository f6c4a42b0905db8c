package timekeeper

import (
	"time"

	"zenpomodoro/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventCompleted   EventType = "completed"
)

// Reason names the operation behind a state change.
type Reason string

const (
	ReasonStart    Reason = "start"
	ReasonPause    Reason = "pause"
	ReasonReset    Reason = "reset"
	ReasonMode     Reason = "mode"
	ReasonPhase    Reason = "phase"
	ReasonSettings Reason = "settings"
)

// TipContextFocusCompleted is attached to the completion of a Pomodoro focus phase.
const TipContextFocusCompleted = "Focus Completed"

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	Reason    Reason
	Mode      model.Mode
	Phase     model.Phase
	Remaining int
	Running   bool
	// TipContext is set on EventCompleted when the completion should trigger a tip.
	TipContext string
	At         time.Time
}

// Transition reports whether the event discards the current mode or phase.
func (event Event) Transition() bool {
	return event.Type == EventStateChange && (event.Reason == ReasonMode || event.Reason == ReasonPhase)
}
