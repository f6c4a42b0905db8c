// Package frames delivers one callback per rendered frame using fyne's
// animation loop.
package frames

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Animation implements timekeeper.Frames on top of fyne.Animation. Fyne calls
// Tick on the main goroutine once per drawn frame, so frames pause when the
// window is not being drawn.
type Animation struct {
	mu      sync.Mutex
	current *fyne.Animation
	onFrame func()
}

// New creates an idle frame source.
func New() *Animation {
	return &Animation{}
}

// Start begins requesting frames. A running source is restarted.
func (frames *Animation) Start(onFrame func()) {
	frames.mu.Lock()
	previous := frames.current
	animation := &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
	}
	animation.Tick = func(float32) {
		frames.tick(animation)
	}
	frames.current = animation
	frames.onFrame = onFrame
	frames.mu.Unlock()

	if previous != nil {
		previous.Stop()
	}
	animation.Start()
}

// Stop cancels frame requests. Ticks already queued by fyne are dropped.
func (frames *Animation) Stop() {
	frames.mu.Lock()
	animation := frames.current
	frames.current = nil
	frames.onFrame = nil
	frames.mu.Unlock()

	if animation != nil {
		animation.Stop()
	}
}

// Running reports whether frames are requested.
func (frames *Animation) Running() bool {
	frames.mu.Lock()
	defer frames.mu.Unlock()
	return frames.current != nil
}

func (frames *Animation) tick(animation *fyne.Animation) {
	frames.mu.Lock()
	if frames.current != animation {
		frames.mu.Unlock()
		return
	}
	onFrame := frames.onFrame
	frames.mu.Unlock()

	if onFrame != nil {
		onFrame()
	}
}
