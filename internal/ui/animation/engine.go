package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains pulse timing values.
type Config struct {
	BrightDuration Range
	DimDuration    Range
}

// PulseSpec defines the two icons a pulse alternates between.
type PulseSpec struct {
	Bright fyne.Resource
	Dim    fyne.Resource
}

// Engine alternates an icon while some background work is pending, such as
// a tip request. updateIcon is called from the engine's goroutine.
type Engine struct {
	mu         sync.Mutex
	config     Config
	updateIcon func(fyne.Resource)
	cancel     context.CancelFunc
	done       chan struct{}
	rng        *rand.Rand
}

// New creates a new pulse engine.
func New(config Config, updateIcon func(fyne.Resource)) *Engine {
	return &Engine{
		config:     config,
		updateIcon: updateIcon,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPulse starts pulsing until Stop or ctx is done. A running pulse is
// replaced.
func (engine *Engine) StartPulse(ctx context.Context, spec PulseSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		for {
			engine.updateIcon(spec.Dim)
			if !sleepWithContext(runCtx, engine.duration(engine.config.DimDuration)) {
				return
			}
			engine.updateIcon(spec.Bright)
			if !sleepWithContext(runCtx, engine.duration(engine.config.BrightDuration)) {
				return
			}
		}
	})
}

// Active reports whether a pulse is running.
func (engine *Engine) Active() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

// Stop terminates any active pulse and waits for its goroutine to exit, so
// no icon update happens after Stop returns.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel := engine.cancel
	done := engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	engine.mu.Lock()
	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func (engine *Engine) duration(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
