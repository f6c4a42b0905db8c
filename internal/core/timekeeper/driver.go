package timekeeper

import "sync"

// Frames delivers a callback once per rendered frame until stopped.
// Frames may arrive irregularly or not at all while the display is hidden.
type Frames interface {
	Start(onFrame func())
	Stop()
}

// Driver advances a TimeKeeper from a frame source. Frames run only while
// the keeper is running; the source is stopped synchronously when it pauses.
type Driver struct {
	mu      sync.Mutex
	keeper  *TimeKeeper
	frames  Frames
	active  bool
	onFrame func(Snapshot)
}

// NewDriver attaches a driver to the keeper.
func NewDriver(keeper *TimeKeeper, frames Frames) *Driver {
	driver := &Driver{
		keeper: keeper,
		frames: frames,
	}
	keeper.OnRunningChange(driver.sync)
	return driver
}

// SetOnFrame registers the observer called after every delivered frame.
func (driver *Driver) SetOnFrame(handler func(Snapshot)) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	driver.onFrame = handler
}

// Active reports whether frames are being requested.
func (driver *Driver) Active() bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.active
}

func (driver *Driver) sync(running bool) {
	driver.mu.Lock()
	if running == driver.active {
		driver.mu.Unlock()
		return
	}
	driver.active = running
	driver.mu.Unlock()

	// Frame sources may deliver the first frame from inside Start.
	if running {
		driver.frames.Start(driver.frame)
		return
	}
	driver.frames.Stop()
}

func (driver *Driver) frame() {
	driver.mu.Lock()
	if !driver.active {
		driver.mu.Unlock()
		return
	}
	handler := driver.onFrame
	driver.mu.Unlock()

	driver.keeper.Advance(driver.keeper.clock.Now())

	if handler != nil {
		handler(driver.keeper.Snapshot())
	}
}
