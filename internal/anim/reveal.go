package anim

import "fmt"

// RevealFrame describes one frame of a progressive point reveal.
// PathUpto is exclusive: the trailing path covers points [0, PathUpto).
type RevealFrame struct {
	Redraw   bool
	Index    int
	PathUpto int
	Title    string
}

// RevealScheduler reveals the points of a single layout one at a time,
// drawing the path travelled so far plus a highlighted current point.
// Each point gets FramesPerPoint sub-frames; the first sub-frame of
// every point is a no-op.
//
// TODO: the first sub-frame being skipped makes the very first point
// appear one tick late at high frames-per-point settings; revisit
// whether sub-frame 0 should redraw too.
type RevealScheduler struct {
	points         PointSet
	framesPerPoint int
	title          string
}

// NewRevealScheduler validates the layout and builds a reveal scheduler.
func NewRevealScheduler(points PointSet, framesPerPoint int, title string) (*RevealScheduler, error) {
	if points.Len() == 0 {
		return nil, ErrEmptySequence
	}
	if framesPerPoint <= 0 {
		return nil, fmt.Errorf("frames per point must be positive, got %d", framesPerPoint)
	}
	return &RevealScheduler{
		points:         points,
		framesPerPoint: framesPerPoint,
		title:          title,
	}, nil
}

// TotalFrames is the animation length.
func (r *RevealScheduler) TotalFrames() int { return r.framesPerPoint * r.points.Len() }

// Points returns the underlying layout.
func (r *RevealScheduler) Points() PointSet { return r.points }

// Title returns the fixed animation title.
func (r *RevealScheduler) Title() string { return r.title }

// Bounds returns the tight viewport of the layout.
func (r *RevealScheduler) Bounds() Bounds { return Sequence{r.points}.Bounds() }

// Step computes the state of frame i.
func (r *RevealScheduler) Step(i int) RevealFrame {
	if i%r.framesPerPoint == 0 {
		return RevealFrame{Title: r.title}
	}
	idx := i / r.framesPerPoint
	return RevealFrame{
		Redraw:   true,
		Index:    idx,
		PathUpto: idx,
		Title:    r.title,
	}
}
