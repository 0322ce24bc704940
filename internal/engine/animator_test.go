package engine

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/san-kum/tweenplot/internal/anim"
	"github.com/san-kum/tweenplot/internal/palette"
)

// fakeSurface records drawing calls and produces a fresh tiny image on
// every snapshot, so frame identity tracks redraws.
type fakeSurface struct {
	clears int
	draws  int
	paths  int
	title  string
	last   anim.PointSet
	lastC  []color.Color
	serial int
}

func (f *fakeSurface) Clear() { f.clears++ }

func (f *fakeSurface) SetTitle(title string) { f.title = title }

func (f *fakeSurface) DrawPoints(ps anim.PointSet, colors []color.Color) {
	f.draws++
	f.last = ps
	f.lastC = colors
}

func (f *fakeSurface) DrawPath(x, y []float64) { f.paths++ }

func (f *fakeSurface) Image() (image.Image, error) {
	f.serial++
	return image.NewRGBA(image.Rect(0, 0, 1, f.serial)), nil
}

// plainSurface implements Surface but not Imager.
type plainSurface struct{}

func (plainSurface) Clear()                                  {}
func (plainSurface) SetTitle(string)                         {}
func (plainSurface) DrawPoints(anim.PointSet, []color.Color) {}
func (plainSurface) DrawPath([]float64, []float64)           {}

func twoLayouts(t *testing.T) *anim.Scheduler {
	t.Helper()
	seq := anim.Sequence{
		{X: []float64{0, 1}, Y: []float64{0, 1}},
		{X: []float64{1, 0}, Y: []float64{1, 0}},
	}
	s, err := anim.NewScheduler(seq, anim.Timing{HoldFrames: 3, TransitionFrames: 2})
	if err != nil {
		t.Fatalf("NewScheduler failed: %v", err)
	}
	return s
}

func TestAnimator_InitialDraw(t *testing.T) {
	surf := &fakeSurface{}
	a, err := New(twoLayouts(t), nil, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if surf.draws != 1 || surf.clears != 1 {
		t.Errorf("init: %d draws %d clears, want 1 each", surf.draws, surf.clears)
	}
	if surf.title != "0" {
		t.Errorf("init title %q, want %q", surf.title, "0")
	}
	if a.Total() != 10 {
		t.Errorf("Total() = %d, want 10", a.Total())
	}
}

func TestAnimator_HoldFramesDoNotRedraw(t *testing.T) {
	surf := &fakeSurface{}
	a, err := New(twoLayouts(t), nil, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	initDraws := surf.draws

	for i := 0; i < 3; i++ {
		st, err := a.Step()
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if st.Phase != anim.PhaseHold {
			t.Fatalf("frame %d: phase %v, want hold", i, st.Phase)
		}
	}
	if surf.draws != initDraws {
		t.Errorf("hold frames redrew the surface %d times", surf.draws-initDraws)
	}
}

func TestAnimator_TransitionRedraws(t *testing.T) {
	surf := &fakeSurface{}
	a, err := New(twoLayouts(t), nil, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	st, err := a.Step() // frame 3: first transition frame, ratio 1
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if st.Phase != anim.PhaseTransition {
		t.Fatalf("phase %v, want transition", st.Phase)
	}
	if surf.last.X[0] != 0 || surf.last.Y[1] != 1 {
		t.Errorf("transition start should show layout 0, got %+v", surf.last)
	}
	if len(surf.lastC) != 2 {
		t.Errorf("expected one color per point, got %d", len(surf.lastC))
	}

	st, err = a.Step() // frame 4: ratio 0.5
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if surf.last.X[0] != 0.5 || surf.last.Y[0] != 0.5 {
		t.Errorf("midpoint frame: %+v", surf.last)
	}
	_ = st
}

func TestAnimator_LoopRestart(t *testing.T) {
	surf := &fakeSurface{}
	a, err := New(twoLayouts(t), nil, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < a.Total(); i++ {
		if _, err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	// The step past the end restarts on layout 0.
	draws := surf.draws
	st, err := a.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if st.Phase != anim.PhaseHold || st.Current != 0 {
		t.Errorf("restart frame: phase %v current %d, want hold of 0", st.Phase, st.Current)
	}
	if surf.draws != draws+1 || surf.title != "0" {
		t.Errorf("restart should redraw layout 0: %d draws, title %q", surf.draws-draws, surf.title)
	}
	if surf.last.X[0] != 0 || surf.last.Y[1] != 1 {
		t.Errorf("restart should show layout 0, got %+v", surf.last)
	}

	// The second loop replays the 0 -> 1 transition.
	var sawFirstTransition bool
	for i := 1; i < a.Total(); i++ {
		st, err := a.Step()
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if st.Phase == anim.PhaseTransition && st.Current == 0 && st.Next == 1 {
			sawFirstTransition = true
		}
	}
	if !sawFirstTransition {
		t.Error("second loop never transitions 0 -> 1")
	}
}

func TestAnimator_Frames(t *testing.T) {
	surf := &fakeSurface{}
	a, err := New(twoLayouts(t), nil, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var calls int
	frames, err := a.Frames(context.Background(), func(frame, total int) {
		if total != 10 {
			t.Errorf("progress total = %d, want 10", total)
		}
		calls++
	})
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("got %d frames, want 10", len(frames))
	}
	if calls != 10 {
		t.Errorf("progress called %d times, want 10", calls)
	}

	// The three hold frames repeat the init snapshot.
	if frames[0] != frames[1] || frames[1] != frames[2] {
		t.Error("hold frames should reuse the previous image")
	}
	// Transition frames are fresh snapshots.
	if frames[3] == frames[2] || frames[4] == frames[3] {
		t.Error("transition frames should be new images")
	}
}

func TestAnimator_FramesNeedsImager(t *testing.T) {
	a, err := New(twoLayouts(t), nil, plainSurface{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := a.Frames(context.Background(), nil); err == nil {
		t.Error("surface without raster snapshots should fail")
	}
}

func TestAnimator_ContextCancel(t *testing.T) {
	surf := &fakeSurface{}
	a, err := New(twoLayouts(t), nil, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Frames(ctx, nil); err == nil {
		t.Error("cancelled context should abort rendering")
	}
}

func TestAnimator_ClassColors(t *testing.T) {
	seq := anim.Sequence{
		{X: []float64{0, 1}, Y: []float64{0, 1}, Labels: []int{0, 1}},
		{X: []float64{1, 0}, Y: []float64{1, 0}, Labels: []int{0, 1}},
	}
	sched, err := anim.NewScheduler(seq, anim.Timing{HoldFrames: 1, TransitionFrames: 1})
	if err != nil {
		t.Fatalf("NewScheduler failed: %v", err)
	}

	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	surf := &fakeSurface{}
	_, err = New(sched, palette.ByClass(map[int]color.Color{0: red, 1: blue}, nil), surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if surf.lastC[0] != color.Color(red) || surf.lastC[1] != color.Color(blue) {
		t.Errorf("class colors not applied on init: %v", surf.lastC)
	}
}

func TestRevealAnimator(t *testing.T) {
	ps := anim.PointSet{X: []float64{0, 1, 2}, Y: []float64{0, 1, 4}}
	sched, err := anim.NewRevealScheduler(ps, 2, "walk")
	if err != nil {
		t.Fatalf("NewRevealScheduler failed: %v", err)
	}

	surf := &fakeSurface{}
	a, err := NewReveal(sched, nil, surf)
	if err != nil {
		t.Fatalf("NewReveal failed: %v", err)
	}
	if surf.last.Len() != 1 || surf.last.X[0] != 0 {
		t.Errorf("init should draw the first point alone: %+v", surf.last)
	}

	// Frame 0 is a no-op sub-frame.
	draws := surf.draws
	if _, err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if surf.draws != draws {
		t.Error("sub-frame 0 should not redraw")
	}

	// Frame 1 redraws point 0 with no path yet.
	if _, err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if surf.draws != draws+1 {
		t.Error("sub-frame 1 should redraw")
	}
	if surf.paths != 0 {
		t.Error("no trailing path before the second point")
	}

	// Frames covers the full reveal.
	frames, err := a.Frames(context.Background(), nil)
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	if len(frames) != 6 {
		t.Errorf("got %d frames, want 6", len(frames))
	}
}

func TestRevealAnimator_Restart(t *testing.T) {
	ps := anim.PointSet{X: []float64{0, 1, 2}, Y: []float64{0, 1, 4}}
	sched, err := anim.NewRevealScheduler(ps, 2, "")
	if err != nil {
		t.Fatalf("NewRevealScheduler failed: %v", err)
	}
	surf := &fakeSurface{}
	a, err := NewReveal(sched, nil, surf)
	if err != nil {
		t.Fatalf("NewReveal failed: %v", err)
	}
	for i := 0; i < a.Total(); i++ {
		if _, err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	// The step past the end rewinds to the first point alone.
	if _, err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if surf.last.Len() != 1 || surf.last.X[0] != 0 {
		t.Errorf("restart should show the first point alone: %+v", surf.last)
	}
}

func TestRevealAnimator_PathGrows(t *testing.T) {
	ps := anim.PointSet{X: []float64{0, 1, 2}, Y: []float64{0, 1, 4}}
	sched, err := anim.NewRevealScheduler(ps, 2, "")
	if err != nil {
		t.Fatalf("NewRevealScheduler failed: %v", err)
	}
	surf := &fakeSurface{}
	a, err := NewReveal(sched, nil, surf)
	if err != nil {
		t.Fatalf("NewReveal failed: %v", err)
	}

	// Advance to frame 3: point 1 with the path covering point 0.
	for i := 0; i < 4; i++ {
		if _, err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	if surf.paths == 0 {
		t.Error("expected a trailing path once the second point is current")
	}
	if surf.last.X[0] != 1 {
		t.Errorf("current point should be point 1, got x=%v", surf.last.X[0])
	}
}
