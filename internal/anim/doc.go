// Package anim contains the frame scheduling core for layout animations.
//
// An animation is driven by a single monotonically increasing frame
// counter. Given a frame index, the scheduler decides which phase is
// active and what the frame should show:
//
//   - hold: the current layout is displayed unchanged (no redraw)
//   - transition: coordinates are linearly blended between the current
//     layout and the next one
//   - settle: the transition just completed and the next layout becomes
//     current
//
// The scheduler is a pure step function: the held layout index is passed
// in and returned, never stored, so phase transitions can be tested
// without any drawing surface. The [RevealScheduler] covers the second
// animation style, revealing the points of a single layout one at a
// time with a trailing path.
//
// Transition blending is linear by default; an easing curve can be
// applied on top via [WithEasing].
package anim
