package timekeeper

import (
	"testing"
	"time"

	"zenpomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrames struct {
	onFrame func()
	starts  int
	stops   int
}

func (frames *fakeFrames) Start(onFrame func()) {
	frames.onFrame = onFrame
	frames.starts++
}

func (frames *fakeFrames) Stop() {
	frames.stops++
}

// fire delivers a frame even after Stop, like a late callback from a
// frame source that has not drained yet.
func (frames *fakeFrames) fire() {
	if frames.onFrame != nil {
		frames.onFrame()
	}
}

func newDriver(t *testing.T) (*Driver, *TimeKeeper, *fakeClock, *fakeFrames) {
	t.Helper()
	keeper, clock := newKeeper(t)
	frames := &fakeFrames{}
	return NewDriver(keeper, frames), keeper, clock, frames
}

func TestDriver_StartsAndStopsWithKeeper(t *testing.T) {
	driver, keeper, _, frames := newDriver(t)

	keeper.Start()
	assert.True(t, driver.Active())
	assert.Equal(t, 1, frames.starts)

	keeper.Pause()
	assert.False(t, driver.Active())
	assert.Equal(t, 1, frames.stops)
}

func TestDriver_FrameAdvancesKeeper(t *testing.T) {
	driver, keeper, clock, frames := newDriver(t)
	var seen []Snapshot
	driver.SetOnFrame(func(snapshot Snapshot) {
		seen = append(seen, snapshot)
	})
	keeper.Start()

	clock.Advance(1500 * time.Millisecond)
	frames.fire()
	clock.Advance(600 * time.Millisecond)
	frames.fire()

	require.Len(t, seen, 2)
	assert.Equal(t, 25*60-1, seen[0].Remaining)
	assert.Equal(t, 25*60-2, seen[1].Remaining)
}

func TestDriver_NoAdvanceAfterPause(t *testing.T) {
	driver, keeper, clock, frames := newDriver(t)
	keeper.SetMode(model.ModeStopwatch)
	keeper.Start()
	clock.Advance(2 * time.Second)
	frames.fire()

	keeper.Pause()
	clock.Advance(time.Minute)
	frames.fire()

	assert.False(t, driver.Active())
	assert.Equal(t, 2, keeper.Snapshot().Elapsed)
}

func TestDriver_StopsOnCompletion(t *testing.T) {
	driver, keeper, clock, frames := newDriver(t)
	keeper.SetMode(model.ModeTimer)
	keeper.Start()

	clock.Advance(6 * time.Minute)
	frames.fire()

	assert.False(t, driver.Active())
	assert.Equal(t, 1, frames.stops)
	assert.Equal(t, 0, keeper.Snapshot().Remaining)
}

func TestDriver_StopsOnTransition(t *testing.T) {
	driver, keeper, _, frames := newDriver(t)

	keeper.Start()
	keeper.SetPhase(model.PhaseLongBreak)
	assert.False(t, driver.Active())

	keeper.Start()
	keeper.SetMode(model.ModeStopwatch)
	assert.False(t, driver.Active())

	keeper.Start()
	keeper.Reset()
	assert.False(t, driver.Active())

	assert.Equal(t, 3, frames.starts)
	assert.Equal(t, 3, frames.stops)
}
