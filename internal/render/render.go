// Package render draws animation frames. The scheduler core never
// touches a drawing surface directly; it talks to the small Surface
// interface, so frame logic stays testable without any plotting
// backend.
//
// Two surfaces are provided:
//
//   - [PlotSurface]: raster frames via gonum/plot, used for GIF and
//     HTML export
//   - [BrailleSurface]: a terminal canvas of braille cells, used by the
//     live preview
package render

import (
	"image"
	"image/color"

	"github.com/san-kum/tweenplot/internal/anim"
	"github.com/san-kum/tweenplot/internal/palette"
)

// Surface is the minimal capability set a frame needs: clear the prior
// frame, draw the new points (plus an optional trailing path), and set
// the title.
type Surface interface {
	Clear()
	SetTitle(title string)
	DrawPoints(ps anim.PointSet, colors []color.Color)
	DrawPath(x, y []float64)
}

// Imager is implemented by surfaces that can snapshot the current
// frame as a raster image.
type Imager interface {
	Image() (image.Image, error)
}

// Options fixes the viewport and styling for the whole animation.
type Options struct {
	Width  int
	Height int
	DPI    int
	Bounds anim.Bounds
	XLabel string
	YLabel string
	Legend []palette.LegendEntry
	Alpha  uint8
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		Width:  640,
		Height: 480,
		DPI:    96,
		Alpha:  128,
	}
}

// withAlpha replaces the alpha channel of a color.
func withAlpha(c color.Color, a uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
