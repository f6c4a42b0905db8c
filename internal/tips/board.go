package tips

import (
	"context"
	"sync"
	"time"

	"zenpomodoro/internal/core/timekeeper"
)

// State is the tip shown to the user.
type State struct {
	Text    string
	Visible bool
	Loading bool
}

// Board holds the current tip and the loading flag. Results land here and
// never touch the timer state.
type Board struct {
	mu       sync.Mutex
	provider Provider
	timeout  time.Duration
	text     string
	visible  bool
	loading  bool
	onChange func(State)
	wg       sync.WaitGroup
}

// NewBoard creates a board backed by provider.
func NewBoard(provider Provider, timeout time.Duration) *Board {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Board{provider: provider, timeout: timeout}
}

// SetOnChange registers the observer for tip updates. It may be called from
// the fetching goroutine.
func (board *Board) SetOnChange(handler func(State)) {
	board.mu.Lock()
	defer board.mu.Unlock()
	board.onChange = handler
}

// Request starts a fetch in the background. It returns false without
// calling the provider while another fetch is outstanding.
func (board *Board) Request(tipContext string) bool {
	board.mu.Lock()
	if board.loading {
		board.mu.Unlock()
		return false
	}
	board.loading = true
	board.text = ""
	board.visible = false
	board.wg.Add(1)
	board.mu.Unlock()
	board.changed()

	go func() {
		defer board.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), board.timeout)
		defer cancel()

		text := board.provider.Fetch(ctx, tipContext)

		board.mu.Lock()
		board.loading = false
		board.text = text
		board.visible = text != ""
		board.mu.Unlock()
		board.changed()
	}()
	return true
}

// Dismiss hides the current tip.
func (board *Board) Dismiss() {
	board.mu.Lock()
	if !board.visible {
		board.mu.Unlock()
		return
	}
	board.text = ""
	board.visible = false
	board.mu.Unlock()
	board.changed()
}

// Snapshot returns the current tip state.
func (board *Board) Snapshot() State {
	board.mu.Lock()
	defer board.mu.Unlock()
	return State{Text: board.text, Visible: board.visible, Loading: board.loading}
}

// Wait blocks until outstanding fetches have finished.
func (board *Board) Wait() {
	board.wg.Wait()
}

// Listen consumes keeper events until ctx is done or the channel closes.
// Focus completion requests a tip; mode and phase changes clear it.
func (board *Board) Listen(ctx context.Context, events <-chan timekeeper.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			board.Handle(event)
		}
	}
}

// Handle applies one keeper event: focus completion requests a tip, mode and
// phase changes clear it. It is suitable for TimeKeeper.OnEvent.
func (board *Board) Handle(event timekeeper.Event) {
	switch {
	case event.Type == timekeeper.EventCompleted && event.TipContext != "":
		board.Request(event.TipContext)
	case event.Transition():
		board.Dismiss()
	}
}

func (board *Board) changed() {
	board.mu.Lock()
	handler := board.onChange
	state := State{Text: board.text, Visible: board.visible, Loading: board.loading}
	board.mu.Unlock()

	if handler != nil {
		handler(state)
	}
}
