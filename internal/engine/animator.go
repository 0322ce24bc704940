// Package engine drives an animation: it walks the frame counter
// through the scheduler, resolves colors, pushes redraws to a surface,
// and collects the finished frame sequence for export. Rendering is
// single-threaded and synchronous; the frame counter is the only
// mutable state.
package engine

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/san-kum/tweenplot/internal/anim"
	"github.com/san-kum/tweenplot/internal/export"
	"github.com/san-kum/tweenplot/internal/palette"
	"github.com/san-kum/tweenplot/internal/render"
)

// Animator plays a layout transition animation onto a surface.
type Animator struct {
	sched   *anim.Scheduler
	colors  *palette.Resolver
	surf    render.Surface
	current int
	frame   int
}

// New builds an animator and draws the initial frame (layout 0).
func New(sched *anim.Scheduler, colors *palette.Resolver, surf render.Surface) (*Animator, error) {
	a := &Animator{sched: sched, colors: colors, surf: surf}
	if err := a.Reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// Total is the frame count of one full loop.
func (a *Animator) Total() int { return a.sched.TotalFrames() }

// Frame is the next frame index to be played.
func (a *Animator) Frame() int { return a.frame % a.Total() }

// Reset rewinds to frame 0 and redraws the first layout.
func (a *Animator) Reset() error {
	a.current = 0
	a.frame = 0
	return a.drawLayout(0)
}

// Seek jumps the playhead. The held layout index is recomputed from
// the frame position so scrubbing lands in a consistent phase.
func (a *Animator) Seek(frame int) error {
	total := a.Total()
	frame = ((frame % total) + total) % total
	a.frame = frame
	a.current = frame / (total / a.sched.Len())
	if a.current >= a.sched.Len() {
		a.current = a.sched.Len() - 1
	}
	st, cur := a.sched.Step(frame, a.current)
	a.current = cur
	if st.Redraw() {
		return a.draw(st)
	}
	return a.drawLayout(a.current)
}

// Step renders the current frame and advances the playhead. A step
// past the end of the loop restarts from frame 0 on layout 0, so the
// animation loops continuously.
func (a *Animator) Step() (anim.FrameState, error) {
	if a.frame >= a.Total() {
		if err := a.Reset(); err != nil {
			return anim.FrameState{}, err
		}
	}
	st, cur := a.sched.Step(a.frame, a.current)
	a.current = cur
	if st.Redraw() {
		if err := a.draw(st); err != nil {
			return st, err
		}
	}
	a.frame++
	return st, nil
}

// Frames renders one full loop and returns every frame as an image.
// Hold frames repeat the previous image so wall-clock timing is kept.
// The surface must support raster snapshots.
func (a *Animator) Frames(ctx context.Context, progress export.Progress) ([]image.Image, error) {
	imager, ok := a.surf.(render.Imager)
	if !ok {
		return nil, fmt.Errorf("surface %T cannot produce raster frames", a.surf)
	}
	if err := a.Reset(); err != nil {
		return nil, err
	}

	last, err := imager.Image()
	if err != nil {
		return nil, err
	}

	total := a.Total()
	frames := make([]image.Image, 0, total)
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}

		st, cur := a.sched.Step(i, a.current)
		a.current = cur
		if st.Redraw() {
			if err := a.draw(st); err != nil {
				return frames, err
			}
			if last, err = imager.Image(); err != nil {
				return frames, err
			}
		}
		frames = append(frames, last)
		if progress != nil {
			progress(i, total)
		}
	}
	return frames, nil
}

func (a *Animator) draw(st anim.FrameState) error {
	cs, err := a.colors.Resolve(st.Points, a.sched.Layout(0))
	if err != nil {
		return err
	}
	a.surf.Clear()
	a.surf.DrawPoints(st.Points, cs)
	a.surf.SetTitle(st.Title)
	return nil
}

func (a *Animator) drawLayout(idx int) error {
	ps := a.sched.Layout(idx)
	cs, err := a.colors.Resolve(ps, a.sched.Layout(0))
	if err != nil {
		return err
	}
	a.surf.Clear()
	a.surf.DrawPoints(ps, cs)
	a.surf.SetTitle(a.sched.Title(idx))
	return nil
}

// RevealAnimator plays a progressive point reveal onto a surface.
type RevealAnimator struct {
	sched  *anim.RevealScheduler
	colors []color.Color
	surf   render.Surface
	frame  int
}

// NewReveal resolves the per-point colors once and draws the initial
// frame (the first point alone).
func NewReveal(sched *anim.RevealScheduler, colors *palette.Resolver, surf render.Surface) (*RevealAnimator, error) {
	ps := sched.Points()
	cs, err := colors.Resolve(ps, ps)
	if err != nil {
		return nil, err
	}
	a := &RevealAnimator{sched: sched, colors: cs, surf: surf}
	if err := a.Reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// Total is the animation frame count.
func (a *RevealAnimator) Total() int { return a.sched.TotalFrames() }

// Frame is the next frame index to be played.
func (a *RevealAnimator) Frame() int { return a.frame % a.Total() }

// Reset rewinds to frame 0 and draws the first point.
func (a *RevealAnimator) Reset() error {
	a.frame = 0
	a.drawUpto(0)
	return nil
}

// Step renders the current frame and advances the playhead, restarting
// from the first point past the end of the reveal.
func (a *RevealAnimator) Step() (anim.RevealFrame, error) {
	if a.frame >= a.Total() {
		if err := a.Reset(); err != nil {
			return anim.RevealFrame{}, err
		}
	}
	rf := a.sched.Step(a.frame)
	if rf.Redraw {
		a.drawUpto(rf.Index)
	}
	a.frame++
	return rf, nil
}

// Frames renders the full reveal and returns every frame as an image.
func (a *RevealAnimator) Frames(ctx context.Context, progress export.Progress) ([]image.Image, error) {
	imager, ok := a.surf.(render.Imager)
	if !ok {
		return nil, fmt.Errorf("surface %T cannot produce raster frames", a.surf)
	}
	if err := a.Reset(); err != nil {
		return nil, err
	}

	last, err := imager.Image()
	if err != nil {
		return nil, err
	}

	total := a.Total()
	frames := make([]image.Image, 0, total)
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}

		rf := a.sched.Step(i)
		if rf.Redraw {
			a.drawUpto(rf.Index)
			if last, err = imager.Image(); err != nil {
				return frames, err
			}
		}
		frames = append(frames, last)
		if progress != nil {
			progress(i, total)
		}
	}
	return frames, nil
}

// drawUpto redraws the path travelled so far plus a highlighted
// current point.
func (a *RevealAnimator) drawUpto(idx int) {
	ps := a.sched.Points()
	a.surf.Clear()
	if idx > 0 {
		a.surf.DrawPath(ps.X[:idx], ps.Y[:idx])
	}
	point := anim.PointSet{X: ps.X[idx : idx+1], Y: ps.Y[idx : idx+1]}
	a.surf.DrawPoints(point, a.colors[idx:idx+1])
	a.surf.SetTitle(a.sched.Title())
}
