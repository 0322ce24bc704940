package anim

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySequence is returned when an animation is constructed with no
// layouts at all.
var ErrEmptySequence = errors.New("empty sequence, no animation needed")

// ShapeError reports a layout whose shape disagrees with the first
// layout of the sequence.
type ShapeError struct {
	Index      int
	WantPoints int
	GotPoints  int
	WantLabels bool
	GotLabels  bool
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("layout %d: shape (%d points, labels=%v) does not match first layout (%d points, labels=%v)",
		e.Index, e.GotPoints, e.GotLabels, e.WantPoints, e.WantLabels)
}

// PointSet is one 2D layout of the data, stored column-wise. Labels is
// either empty or has one class label per point.
type PointSet struct {
	X      []float64
	Y      []float64
	Labels []int
}

// FromXY builds a PointSet from x and y columns.
func FromXY(x, y []float64) (PointSet, error) {
	if len(x) != len(y) {
		return PointSet{}, fmt.Errorf("column length mismatch: %d x values, %d y values", len(x), len(y))
	}
	return PointSet{X: x, Y: y}, nil
}

// FromRows builds a PointSet from row-major data. Rows of length one
// are treated as y values plotted against their index. A third column
// holds integer class labels.
func FromRows(rows [][]float64) (PointSet, error) {
	if len(rows) == 0 {
		return PointSet{}, ErrEmptySequence
	}
	width := len(rows[0])
	if width < 1 || width > 3 {
		return PointSet{}, fmt.Errorf("unsupported row width %d, want 1 to 3 columns", width)
	}

	ps := PointSet{
		X: make([]float64, len(rows)),
		Y: make([]float64, len(rows)),
	}
	if width == 3 {
		ps.Labels = make([]int, len(rows))
	}
	for i, row := range rows {
		if len(row) != width {
			return PointSet{}, fmt.Errorf("row %d has %d columns, want %d", i, len(row), width)
		}
		switch width {
		case 1:
			ps.X[i] = float64(i)
			ps.Y[i] = row[0]
		default:
			ps.X[i] = row[0]
			ps.Y[i] = row[1]
		}
		if width == 3 {
			ps.Labels[i] = int(row[2])
		}
	}
	return ps, nil
}

// Len returns the number of points.
func (p PointSet) Len() int { return len(p.X) }

// HasLabels reports whether the layout carries class labels.
func (p PointSet) HasLabels() bool { return len(p.Labels) > 0 }

// Clone returns a deep copy.
func (p PointSet) Clone() PointSet {
	c := PointSet{
		X: make([]float64, len(p.X)),
		Y: make([]float64, len(p.Y)),
	}
	copy(c.X, p.X)
	copy(c.Y, p.Y)
	if p.HasLabels() {
		c.Labels = make([]int, len(p.Labels))
		copy(c.Labels, p.Labels)
	}
	return c
}

// Lerp blends two layouts point-wise. ratio is the weight of the
// receiver: 1 yields p, 0 yields q. Labels are taken from p.
func (p PointSet) Lerp(q PointSet, ratio float64) PointSet {
	out := PointSet{
		X: make([]float64, len(p.X)),
		Y: make([]float64, len(p.Y)),
	}
	for i := range p.X {
		out.X[i] = ratio*p.X[i] + (1-ratio)*q.X[i]
		out.Y[i] = ratio*p.Y[i] + (1-ratio)*q.Y[i]
	}
	if p.HasLabels() {
		out.Labels = make([]int, len(p.Labels))
		copy(out.Labels, p.Labels)
	}
	return out
}

// IsValid reports whether all coordinates are finite.
func (p PointSet) IsValid() bool {
	for i := range p.X {
		if math.IsNaN(p.X[i]) || math.IsInf(p.X[i], 0) {
			return false
		}
		if math.IsNaN(p.Y[i]) || math.IsInf(p.Y[i], 0) {
			return false
		}
	}
	return true
}

// Bounds is an axis-aligned viewport.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Pad expands the bounds by eps on every side.
func (b Bounds) Pad(eps float64) Bounds {
	return Bounds{
		XMin: b.XMin - eps,
		XMax: b.XMax + eps,
		YMin: b.YMin - eps,
		YMax: b.YMax + eps,
	}
}

// Sequence is an ordered series of layouts sharing one shape.
type Sequence []PointSet

// Validate checks the construction preconditions: at least one layout,
// and a uniform shape across the whole sequence.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	want := s[0]
	if want.Len() == 0 {
		return ErrEmptySequence
	}
	for i, ps := range s {
		if ps.Len() != want.Len() || ps.HasLabels() != want.HasLabels() {
			return ShapeError{
				Index:      i,
				WantPoints: want.Len(),
				GotPoints:  ps.Len(),
				WantLabels: want.HasLabels(),
				GotLabels:  ps.HasLabels(),
			}
		}
	}
	return nil
}

// Bounds computes the tight bounding box across every layout, so the
// viewport stays fixed for the whole animation.
func (s Sequence) Bounds() Bounds {
	b := Bounds{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for _, ps := range s {
		for i := range ps.X {
			b.XMin = math.Min(b.XMin, ps.X[i])
			b.XMax = math.Max(b.XMax, ps.X[i])
			b.YMin = math.Min(b.YMin, ps.Y[i])
			b.YMax = math.Max(b.YMax, ps.Y[i])
		}
	}
	return b
}
