package animation

import "time"

// DefaultConfig returns a slow, calm pulse.
func DefaultConfig() Config {
	return Config{
		BrightDuration: Range{
			Min: 600 * time.Millisecond,
			Max: 700 * time.Millisecond,
		},
		DimDuration: Range{
			Min: 400 * time.Millisecond,
			Max: 500 * time.Millisecond,
		},
	}
}
