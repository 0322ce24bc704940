package anim

import (
	"fmt"
	"strconv"
)

// Phase identifies what a frame should do.
type Phase int

const (
	// PhaseHold keeps the last drawn layout on screen.
	PhaseHold Phase = iota
	// PhaseTransition blends between the held layout and the next one.
	PhaseTransition
	// PhaseSettle completes a transition, making the next layout current.
	PhaseSettle
)

func (p Phase) String() string {
	switch p {
	case PhaseHold:
		return "hold"
	case PhaseTransition:
		return "transition"
	case PhaseSettle:
		return "settle"
	}
	return "unknown"
}

// Timing holds the frame budget of a single hold+transition cycle.
type Timing struct {
	HoldFrames       int
	TransitionFrames int
}

// Span is the frame count of one full cycle.
func (t Timing) Span() int { return t.HoldFrames + t.TransitionFrames }

// TotalFrames is the animation length for a sequence of n layouts.
func (t Timing) TotalFrames(n int) int { return t.Span() * n }

func (t Timing) Validate() error {
	if t.HoldFrames < 0 {
		return fmt.Errorf("hold frames must be non-negative, got %d", t.HoldFrames)
	}
	if t.TransitionFrames <= 0 {
		return fmt.Errorf("transition frames must be positive, got %d", t.TransitionFrames)
	}
	return nil
}

// FrameState is everything a surface needs to draw one frame. Points is
// only populated for frames that redraw (transition and settle).
type FrameState struct {
	Phase   Phase
	Current int
	Next    int
	Ratio   float64
	Points  PointSet
	Title   string
}

// Redraw reports whether the frame changes what is on screen.
func (f FrameState) Redraw() bool { return f.Phase != PhaseHold }

// Scheduler maps a global frame index to a FrameState. It owns no
// mutable state: the held layout index travels through Step.
type Scheduler struct {
	seq    Sequence
	titles []string
	timing Timing
	ease   EaseFunc
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTitles sets per-layout titles. Missing entries fall back to the
// layout index.
func WithTitles(titles []string) Option {
	return func(s *Scheduler) { copy(s.titles, titles) }
}

// WithEasing shapes the transition progress. The default is linear.
func WithEasing(fn EaseFunc) Option {
	return func(s *Scheduler) { s.ease = fn }
}

// NewScheduler validates the sequence and timing and builds a scheduler.
func NewScheduler(seq Sequence, timing Timing, opts ...Option) (*Scheduler, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{
		seq:    seq,
		titles: make([]string, len(seq)),
		timing: timing,
	}
	for i := range s.titles {
		s.titles[i] = strconv.Itoa(i)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the number of layouts.
func (s *Scheduler) Len() int { return len(s.seq) }

// TotalFrames returns the length of one full loop of the animation.
func (s *Scheduler) TotalFrames() int { return s.timing.TotalFrames(len(s.seq)) }

// Layout returns layout i.
func (s *Scheduler) Layout(i int) PointSet { return s.seq[i] }

// Title returns the title of layout i.
func (s *Scheduler) Title(i int) string { return s.titles[i] }

// Bounds returns the tight viewport over the whole sequence.
func (s *Scheduler) Bounds() Bounds { return s.seq.Bounds() }

// Step computes the state of frame i given the held layout index and
// returns the possibly advanced index. Phase boundaries are strict:
// the frame exactly at a limit belongs to the next phase. The sequence
// wraps circularly, so the animation loops forever.
func (s *Scheduler) Step(i, current int) (FrameState, int) {
	n := len(s.seq)
	next := (current + 1) % n
	untilCurrent := current * s.timing.Span()

	switch {
	case i < untilCurrent+s.timing.HoldFrames:
		return FrameState{
			Phase:   PhaseHold,
			Current: current,
			Next:    next,
			Ratio:   1,
			Title:   s.titles[current],
		}, current

	case i < untilCurrent+s.timing.Span():
		elapsed := i - (untilCurrent + s.timing.HoldFrames)
		ratio := float64(s.timing.TransitionFrames-elapsed) / float64(s.timing.TransitionFrames)
		weight := ratio
		if s.ease != nil {
			weight = 1 - s.ease(1-ratio)
		}
		return FrameState{
			Phase:   PhaseTransition,
			Current: current,
			Next:    next,
			Ratio:   ratio,
			Points:  s.seq[current].Lerp(s.seq[next], weight),
			Title:   fmt.Sprintf("%s -> %s", s.titles[current], s.titles[next]),
		}, current

	default:
		return FrameState{
			Phase:   PhaseSettle,
			Current: next,
			Next:    (next + 1) % n,
			Ratio:   0,
			Points:  s.seq[next].Clone(),
			Title:   s.titles[next],
		}, next
	}
}
