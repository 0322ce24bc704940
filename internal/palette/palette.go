// Package palette resolves the color assignment of an animation frame:
// a fixed per-point list, an explicit class-to-color mapping, or an
// automatic categorical palette derived from class labels.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/tweenplot/internal/anim"
)

// Default is the color used when nothing else is specified.
var Default = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Categorical returns n visually distinct colors spaced evenly in HCL
// hue. Deterministic for a given n.
func Categorical(n int) []color.Color {
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		h := 360.0 * float64(i) / float64(n)
		out[i] = colorful.Hcl(h, 0.55, 0.55).Clamped()
	}
	return out
}

// LegendEntry is one class in the legend.
type LegendEntry struct {
	Label int
	Name  string
	Color color.Color
}

// Resolver assigns a color to every point of a frame. A zero Resolver
// paints everything in the default color.
type Resolver struct {
	fixed   []color.Color
	byClass map[int]color.Color
	auto    map[int]color.Color
	classes map[int]string
	uniform color.Color
}

// Fixed builds a resolver from a per-point color list.
func Fixed(colors []color.Color) *Resolver {
	return &Resolver{fixed: colors}
}

// ByClass builds a resolver from an explicit class-to-color mapping.
// An optional class-to-name mapping feeds the legend.
func ByClass(colors map[int]color.Color, classes map[int]string) *Resolver {
	return &Resolver{byClass: colors, classes: classes}
}

// Auto builds a resolver that derives a categorical palette from the
// labels it sees. A class keeps its color once assigned.
func Auto() *Resolver {
	return &Resolver{auto: make(map[int]color.Color)}
}

// Uniform builds a resolver painting every point the same color.
func Uniform(c color.Color) *Resolver {
	return &Resolver{uniform: c}
}

// labelsFor picks the label column of ps, falling back to the first
// layout when ps carries none.
func labelsFor(ps, first anim.PointSet) []int {
	if ps.HasLabels() {
		return ps.Labels
	}
	return first.Labels
}

// Resolve returns one color per point of ps. first supplies fallback
// labels when ps lacks its own.
func (r *Resolver) Resolve(ps, first anim.PointSet) ([]color.Color, error) {
	n := ps.Len()
	out := make([]color.Color, n)

	switch {
	case r == nil:
		for i := range out {
			out[i] = Default
		}

	case r.uniform != nil:
		for i := range out {
			out[i] = r.uniform
		}

	case r.fixed != nil:
		if len(r.fixed) != n {
			return nil, fmt.Errorf("fixed color list has %d entries for %d points", len(r.fixed), n)
		}
		copy(out, r.fixed)

	case r.byClass != nil:
		labels := labelsFor(ps, first)
		if len(labels) != n {
			return nil, fmt.Errorf("class coloring needs %d labels, layout has %d", n, len(labels))
		}
		for i, label := range labels {
			c, ok := r.byClass[label]
			if !ok {
				return nil, fmt.Errorf("no color mapped for class %d", label)
			}
			out[i] = c
		}

	case r.auto != nil:
		labels := labelsFor(ps, first)
		if len(labels) != n {
			return nil, fmt.Errorf("class coloring needs %d labels, layout has %d", n, len(labels))
		}
		r.fill(labels)
		for i, label := range labels {
			out[i] = r.auto[label]
		}

	default:
		for i := range out {
			out[i] = Default
		}
	}

	return out, nil
}

// goldenAngle spaces hues for labels added after the first batch.
const goldenAngle = 137.50776405003785

// fill assigns palette slots to any labels not seen before. Existing
// assignments are never touched: the first batch is spaced evenly and
// later additions walk the hue wheel by the golden angle, so colors
// stay stable across frames even when a class first appears late.
func (r *Resolver) fill(labels []int) {
	missing := map[int]bool{}
	for _, label := range labels {
		if _, ok := r.auto[label]; !ok {
			missing[label] = true
		}
	}
	if len(missing) == 0 {
		return
	}
	add := make([]int, 0, len(missing))
	for label := range missing {
		add = append(add, label)
	}
	sort.Ints(add)

	if len(r.auto) == 0 {
		colors := Categorical(len(add))
		for i, label := range add {
			r.auto[label] = colors[i]
		}
		return
	}
	for _, label := range add {
		h := math.Mod(float64(len(r.auto))*goldenAngle, 360)
		r.auto[label] = colorful.Hcl(h, 0.55, 0.55).Clamped()
	}
}

// Legend returns the legend entries for the given labels, sorted by
// class. Classes without a display name use their numeric label.
func (r *Resolver) Legend(labels []int) ([]LegendEntry, error) {
	if r == nil {
		return nil, nil
	}
	seen := map[int]bool{}
	order := []int{}
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
	}
	sort.Ints(order)

	entries := make([]LegendEntry, 0, len(order))
	for _, label := range order {
		name := fmt.Sprintf("%d", label)
		if n, ok := r.classes[label]; ok {
			name = n
		}
		var c color.Color
		switch {
		case r.byClass != nil:
			var ok bool
			c, ok = r.byClass[label]
			if !ok {
				return nil, fmt.Errorf("no color mapped for class %d", label)
			}
		case r.auto != nil:
			r.fill(labels)
			c = r.auto[label]
		default:
			c = Default
		}
		entries = append(entries, LegendEntry{Label: label, Name: name, Color: c})
	}
	return entries, nil
}
