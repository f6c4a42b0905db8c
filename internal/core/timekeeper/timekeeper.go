package timekeeper

import (
	"slices"
	"sync"
	"time"

	"zenpomodoro/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	Clock Clock
}

// TimeKeeper owns the timer state and every transition on it.
// It never schedules itself: a caller drives it through Advance.
type TimeKeeper struct {
	mu        sync.Mutex
	settings  model.Settings
	clock     Clock
	mode      model.Mode
	phase     model.Phase
	remaining int
	total     int
	elapsed   int
	running   bool
	lastTick  time.Time
	events    []chan Event
	observers []func(running bool)
	handlers  []func(Event)
	pending   []Event
}

// New creates a paused TimeKeeper in Pomodoro focus.
func New(settings model.Settings, config Config) *TimeKeeper {
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	keeper := &TimeKeeper{
		settings: settings.Normalize(),
		clock:    config.Clock,
		mode:     model.ModePomodoro,
		phase:    model.PhaseFocus,
	}
	keeper.applyPhaseLocked(model.PhaseFocus)
	keeper.lastTick = keeper.clock.Now()
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// OnRunningChange registers a callback that runs synchronously, after the
// state lock is released, whenever the running flag flips.
func (keeper *TimeKeeper) OnRunningChange(handler func(running bool)) {
	keeper.mu.Lock()
	keeper.observers = append(keeper.observers, handler)
	keeper.mu.Unlock()
}

// OnEvent registers a callback that receives every event synchronously,
// after the state lock is released. Unlike Subscribe it never drops events.
func (keeper *TimeKeeper) OnEvent(handler func(Event)) {
	keeper.mu.Lock()
	keeper.handlers = append(keeper.handlers, handler)
	keeper.mu.Unlock()
}

// Close closes every subscriber channel.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start resumes counting from now. A finished countdown stays paused until
// it is reset or another mode or phase is chosen.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running || (keeper.mode.Countdown() && keeper.remaining == 0) {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.lastTick = keeper.clock.Now()
	keeper.emitStateLocked(ReasonStart)
	keeper.unlock()

	keeper.notify(true)
}

// Pause freezes the timer.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = false
	keeper.emitStateLocked(ReasonPause)
	keeper.unlock()

	keeper.notify(false)
}

// Toggle starts a paused timer or pauses a running one.
func (keeper *TimeKeeper) Toggle() {
	if keeper.Running() {
		keeper.Pause()
		return
	}
	keeper.Start()
}

// Reset stops the timer and restores the counter of the current mode.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	wasRunning := keeper.stopLocked()
	keeper.resetLocked()
	keeper.emitStateLocked(ReasonReset)
	keeper.unlock()

	if wasRunning {
		keeper.notify(false)
	}
}

// SetMode switches mode, discarding any progress of the previous one.
func (keeper *TimeKeeper) SetMode(mode model.Mode) {
	keeper.mu.Lock()
	wasRunning := keeper.stopLocked()
	keeper.mode = mode
	switch mode {
	case model.ModePomodoro:
		keeper.applyPhaseLocked(model.PhaseFocus)
	case model.ModeStopwatch:
		keeper.elapsed = 0
	default:
		keeper.applyTimerLocked()
	}
	keeper.emitStateLocked(ReasonMode)
	keeper.unlock()

	if wasRunning {
		keeper.notify(false)
	}
}

// SetPhase selects a Pomodoro phase and loads its duration.
func (keeper *TimeKeeper) SetPhase(phase model.Phase) {
	keeper.mu.Lock()
	wasRunning := keeper.stopLocked()
	keeper.applyPhaseLocked(phase)
	keeper.emitStateLocked(ReasonPhase)
	keeper.unlock()

	if wasRunning {
		keeper.notify(false)
	}
}

// UpdateSettings stores new phase lengths and resets the timer.
func (keeper *TimeKeeper) UpdateSettings(settings model.Settings) {
	keeper.mu.Lock()
	keeper.settings = settings.Normalize()
	wasRunning := keeper.stopLocked()
	keeper.resetLocked()
	keeper.emitStateLocked(ReasonSettings)
	keeper.unlock()

	if wasRunning {
		keeper.notify(false)
	}
}

// Settings returns the active phase lengths.
func (keeper *TimeKeeper) Settings() model.Settings {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.settings
}

// Running reports whether the timer is counting.
func (keeper *TimeKeeper) Running() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.running
}

// Advance applies the whole seconds elapsed since the last tick. Sub-second
// remainders stay on the books by moving the last tick back by the remainder,
// so any chunking of the same wall-clock span subtracts the same seconds.
// It reports whether at least one second was applied.
func (keeper *TimeKeeper) Advance(now time.Time) bool {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return false
	}

	delta := now.Sub(keeper.lastTick)
	if delta < time.Second {
		keeper.mu.Unlock()
		return false
	}
	secondsPassed := int(delta / time.Second)
	keeper.lastTick = now.Add(-(delta % time.Second))

	if !keeper.mode.Countdown() {
		keeper.elapsed += secondsPassed
		keeper.mu.Unlock()
		return true
	}

	if keeper.remaining > secondsPassed {
		keeper.remaining -= secondsPassed
		keeper.mu.Unlock()
		return true
	}

	keeper.remaining = 0
	keeper.running = false
	event := Event{
		Type:  EventCompleted,
		Mode:  keeper.mode,
		Phase: keeper.phase,
		At:    now,
	}
	if keeper.mode == model.ModePomodoro && keeper.phase == model.PhaseFocus {
		event.TipContext = TipContextFocusCompleted
	}
	keeper.emitLocked(event)
	keeper.unlock()

	keeper.notify(false)
	return true
}

// Snapshot returns a copy of the presentation-facing state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Snapshot{
		Mode:      keeper.mode,
		Phase:     keeper.phase,
		Remaining: keeper.remaining,
		Total:     keeper.total,
		Elapsed:   keeper.elapsed,
		Running:   keeper.running,
	}
}

func (keeper *TimeKeeper) stopLocked() bool {
	wasRunning := keeper.running
	keeper.running = false
	return wasRunning
}

func (keeper *TimeKeeper) resetLocked() {
	switch keeper.mode {
	case model.ModeStopwatch:
		keeper.elapsed = 0
	case model.ModePomodoro:
		keeper.applyPhaseLocked(keeper.phase)
	default:
		keeper.applyTimerLocked()
	}
}

func (keeper *TimeKeeper) applyPhaseLocked(phase model.Phase) {
	keeper.phase = phase
	keeper.total = int(keeper.settings.PhaseDuration(phase) / time.Second)
	keeper.remaining = keeper.total
}

func (keeper *TimeKeeper) applyTimerLocked() {
	keeper.total = int(model.TimerDuration / time.Second)
	keeper.remaining = keeper.total
}

func (keeper *TimeKeeper) notify(running bool) {
	keeper.mu.Lock()
	observers := slices.Clone(keeper.observers)
	keeper.mu.Unlock()

	for _, observer := range observers {
		observer(running)
	}
}

func (keeper *TimeKeeper) emitStateLocked(reason Reason) {
	keeper.emitLocked(Event{
		Type:      EventStateChange,
		Reason:    reason,
		Mode:      keeper.mode,
		Phase:     keeper.phase,
		Remaining: keeper.remaining,
		Running:   keeper.running,
		At:        keeper.clock.Now(),
	})
}

// emitLocked offers the event to subscriber channels without blocking and
// queues it for OnEvent handlers, which run in unlock.
func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
	if len(keeper.handlers) > 0 {
		keeper.pending = append(keeper.pending, event)
	}
}

// unlock releases the state lock and then delivers queued events.
func (keeper *TimeKeeper) unlock() {
	pending := keeper.pending
	keeper.pending = nil
	handlers := slices.Clone(keeper.handlers)
	keeper.mu.Unlock()

	for _, event := range pending {
		for _, handler := range handlers {
			handler(event)
		}
	}
}
