package ring

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

var (
	fill  = color.NRGBA{R: 255, G: 99, B: 71, A: 255}
	track = color.NRGBA{R: 55, G: 65, B: 81, A: 255}
	style = Style{Fill: fill, Track: track}
)

func TestPixel_CentreAndCornerTransparent(t *testing.T) {
	assert.Equal(t, transparent, Pixel(100, 100, 200, 200, 0.5, style))
	assert.Equal(t, transparent, Pixel(0, 0, 200, 200, 0.5, style))
	assert.Equal(t, transparent, Pixel(0, 0, 0, 0, 0.5, style))
}

func TestPixel_ArcFillsClockwiseFromTop(t *testing.T) {
	top := func(progress float64) color.Color { return Pixel(100, 2, 200, 200, progress, style) }
	right := func(progress float64) color.Color { return Pixel(197, 100, 200, 200, progress, style) }
	left := func(progress float64) color.Color { return Pixel(2, 100, 200, 200, progress, style) }

	assert.Equal(t, track, right(0))
	assert.Equal(t, fill, right(0.3))
	assert.Equal(t, track, left(0.5))
	assert.Equal(t, fill, left(0.8))
	assert.Equal(t, fill, top(1))
}

func TestPixel_FullProgressFillsWholeRing(t *testing.T) {
	for _, point := range [][2]int{{100, 2}, {197, 100}, {100, 197}, {2, 100}} {
		assert.Equal(t, fill, Pixel(point[0], point[1], 200, 200, 1, style), "point=%v", point)
	}
}

func TestRing_UpdateClamps(t *testing.T) {
	test.NewApp()
	ring := New(100, style)

	ring.Update(1.7, fill)
	assert.Equal(t, 1.0, ring.Progress())

	ring.Update(-2, track)
	assert.Equal(t, 0.0, ring.Progress())
	assert.NotNil(t, ring.CanvasObject())
}
