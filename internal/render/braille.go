package render

import (
	"image/color"
	"strings"

	"github.com/san-kum/tweenplot/internal/anim"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// BrailleSurface draws frames onto a grid of braille cells for the
// terminal preview. Coordinates are projected through the fixed
// animation bounds, so the view matches the raster output. Colors are
// ignored; styling is left to the TUI layer.
type BrailleSurface struct {
	width  int
	height int
	bounds anim.Bounds
	grid   [][]rune
	title  string
}

// NewBrailleSurface creates a surface of width x height cells, which
// gives a dot resolution of (width*2) x (height*4).
func NewBrailleSurface(width, height int, bounds anim.Bounds) *BrailleSurface {
	s := &BrailleSurface{
		width:  width,
		height: height,
		bounds: bounds,
		grid:   make([][]rune, height),
	}
	for i := range s.grid {
		s.grid[i] = make([]rune, width)
	}
	s.Clear()
	return s
}

// Clear empties every cell.
func (s *BrailleSurface) Clear() {
	for _, row := range s.grid {
		for i := range row {
			row[i] = 0x2800
		}
	}
}

// SetTitle records the frame title for the TUI header.
func (s *BrailleSurface) SetTitle(title string) { s.title = title }

// Title returns the most recent frame title.
func (s *BrailleSurface) Title() string { return s.title }

// DrawPoints projects each point into the dot grid.
func (s *BrailleSurface) DrawPoints(ps anim.PointSet, colors []color.Color) {
	for i := range ps.X {
		x, y, ok := s.project(ps.X[i], ps.Y[i])
		if ok {
			s.set(x, y)
		}
	}
}

// DrawPath draws line segments between consecutive points.
func (s *BrailleSurface) DrawPath(x, y []float64) {
	for i := 1; i < len(x); i++ {
		x1, y1, ok1 := s.project(x[i-1], y[i-1])
		x2, y2, ok2 := s.project(x[i], y[i])
		if ok1 && ok2 {
			s.line(x1, y1, x2, y2)
		}
	}
}

// Text renders the grid as terminal lines.
func (s *BrailleSurface) Text() string {
	var b strings.Builder
	for i, row := range s.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func (s *BrailleSurface) project(wx, wy float64) (int, int, bool) {
	spanX := s.bounds.XMax - s.bounds.XMin
	spanY := s.bounds.YMax - s.bounds.YMin
	if spanX <= 0 || spanY <= 0 {
		return 0, 0, false
	}
	dotsX := s.width * 2
	dotsY := s.height * 4
	px := int((wx - s.bounds.XMin) / spanX * float64(dotsX-1))
	// Terminal rows grow downward.
	py := int((s.bounds.YMax - wy) / spanY * float64(dotsY-1))
	if px < 0 || px >= dotsX || py < 0 || py >= dotsY {
		return 0, 0, false
	}
	return px, py, true
}

func (s *BrailleSurface) set(x, y int) {
	col := x / 2
	row := y / 4
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return
	}
	s.grid[row][col] |= pixelMap[y%4][x%2]
}

func (s *BrailleSurface) line(x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		s.set(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
