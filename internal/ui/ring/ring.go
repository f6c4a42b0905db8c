// Package ring draws the circular progress indicator.
package ring

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// StrokeFraction is the ring thickness relative to its radius.
const StrokeFraction = 6.0 / 140.0

var transparent = color.NRGBA{}

// Style is the colour of the filled and unfilled arc.
type Style struct {
	Fill  color.Color
	Track color.Color
}

// Pixel returns the colour of pixel (x, y) of a w×h ring whose arc is filled
// clockwise from twelve o'clock up to progress (0 to 1).
func Pixel(x, y, w, h int, progress float64, style Style) color.Color {
	if w <= 0 || h <= 0 {
		return transparent
	}
	radius := math.Min(float64(w), float64(h))/2 - 1
	if radius <= 0 {
		return transparent
	}
	thickness := math.Max(radius*StrokeFraction, 2)

	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	distance := math.Hypot(dx, dy)
	if distance > radius || distance < radius-thickness {
		return transparent
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle/(2*math.Pi) <= progress {
		return style.Fill
	}
	return style.Track
}

// Ring is a raster-backed progress ring.
type Ring struct {
	mu       sync.Mutex
	raster   *canvas.Raster
	progress float64
	style    Style
}

// New creates a ring with the given minimum side length.
func New(side float32, style Style) *Ring {
	ring := &Ring{style: style}
	ring.raster = canvas.NewRasterWithPixels(ring.pixel)
	ring.raster.SetMinSize(fyne.NewSize(side, side))
	return ring
}

// CanvasObject returns the drawable raster.
func (ring *Ring) CanvasObject() fyne.CanvasObject {
	return ring.raster
}

// Update sets progress and fill colour and redraws when either changed.
func (ring *Ring) Update(progress float64, fill color.Color) {
	progress = math.Max(0, math.Min(1, progress))

	ring.mu.Lock()
	changed := math.Abs(ring.progress-progress) > 1e-4 || !sameColor(ring.style.Fill, fill)
	ring.progress = progress
	ring.style.Fill = fill
	ring.mu.Unlock()

	if changed {
		ring.raster.Refresh()
	}
}

// Progress returns the drawn progress.
func (ring *Ring) Progress() float64 {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	return ring.progress
}

func (ring *Ring) pixel(x, y, w, h int) color.Color {
	ring.mu.Lock()
	progress := ring.progress
	style := ring.style
	ring.mu.Unlock()
	return Pixel(x, y, w, h, progress, style)
}

func sameColor(left, right color.Color) bool {
	if left == nil || right == nil {
		return left == right
	}
	lr, lg, lb, la := left.RGBA()
	rr, rg, rb, ra := right.RGBA()
	return lr == rr && lg == rg && lb == rb && la == ra
}
