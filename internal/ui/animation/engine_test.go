package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestRange_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fixed := Range{Min: time.Second, Max: time.Second}
	spread := Range{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}

	assert.Equal(t, time.Second, fixed.Random(rng))
	for i := 0; i < 50; i++ {
		value := spread.Random(rng)
		assert.GreaterOrEqual(t, value, spread.Min)
		assert.Less(t, value, spread.Max)
	}
}

func TestEngine_PulseAlternatesUntilStopped(t *testing.T) {
	bright := fyne.NewStaticResource("bright", []byte("b"))
	dim := fyne.NewStaticResource("dim", []byte("d"))
	var mu sync.Mutex
	var updates []fyne.Resource
	engine := New(Config{
		BrightDuration: Range{Min: time.Millisecond, Max: time.Millisecond},
		DimDuration:    Range{Min: time.Millisecond, Max: time.Millisecond},
	}, func(resource fyne.Resource) {
		mu.Lock()
		updates = append(updates, resource)
		mu.Unlock()
	})

	engine.StartPulse(context.Background(), PulseSpec{Bright: bright, Dim: dim})
	assert.True(t, engine.Active())
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(updates) >= 4
	}, time.Second, time.Millisecond)

	engine.Stop()
	assert.False(t, engine.Active())

	mu.Lock()
	count := len(updates)
	assert.Equal(t, dim, updates[0])
	assert.Equal(t, bright, updates[1])
	mu.Unlock()

	time.Sleep(10 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, count, len(updates))
	mu.Unlock()
}

func TestEngine_ContextCancelEndsPulse(t *testing.T) {
	engine := New(DefaultConfig(), func(fyne.Resource) {})
	ctx, cancel := context.WithCancel(context.Background())

	engine.StartPulse(ctx, PulseSpec{})
	cancel()
	engine.Stop()

	assert.False(t, engine.Active())
}

func TestEngine_StopWhenIdle(t *testing.T) {
	engine := New(DefaultConfig(), func(fyne.Resource) {})

	assert.NotPanics(t, engine.Stop)
}
