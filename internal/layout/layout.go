// Package layout generates synthetic 2D point layouts for the demo
// animations. Every generator labels its points (by cluster or by
// angular sector) so any combination of layouts keeps a uniform shape
// and legend support works throughout a sequence.
package layout

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/san-kum/tweenplot/internal/anim"
)

const labelClasses = 4

// Generator produces an n-point layout. The seed controls jitter so a
// sequence built from one seed is reproducible.
type Generator func(n int, seed int64) anim.PointSet

// Generators is the registry of named layouts.
var Generators = map[string]Generator{
	"circle":    Circle,
	"spiral":    Spiral,
	"grid":      Grid,
	"clusters":  Clusters,
	"lissajous": Lissajous,
}

// Names lists the registered generators in sorted order.
func Names() []string {
	names := make([]string, 0, len(Generators))
	for name := range Generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build assembles a sequence from generator names, all sharing n points
// and one seed.
func Build(names []string, n int, seed int64) (anim.Sequence, error) {
	seq := make(anim.Sequence, 0, len(names))
	for _, name := range names {
		gen, ok := Generators[name]
		if !ok {
			return nil, fmt.Errorf("unknown layout %q", name)
		}
		seq = append(seq, gen(n, seed))
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}

// sectorLabels assigns classes round-robin, matching cluster
// assignment in Clusters so layouts can transition into each other
// with stable point colors.
func sectorLabels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i % labelClasses
	}
	return labels
}

// Circle places points evenly on a unit circle with radial jitter.
func Circle(n int, seed int64) anim.PointSet {
	rng := rand.New(rand.NewSource(seed))
	ps := anim.PointSet{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Labels: sectorLabels(n),
	}
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		r := 1 + 0.05*rng.NormFloat64()
		ps.X[i] = r * math.Cos(theta)
		ps.Y[i] = r * math.Sin(theta)
	}
	return ps
}

// Spiral winds points along an Archimedean spiral.
func Spiral(n int, seed int64) anim.PointSet {
	rng := rand.New(rand.NewSource(seed))
	ps := anim.PointSet{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Labels: sectorLabels(n),
	}
	turns := 3.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		theta := 2 * math.Pi * turns * t
		r := t + 0.02*rng.NormFloat64()
		ps.X[i] = r * math.Cos(theta)
		ps.Y[i] = r * math.Sin(theta)
	}
	return ps
}

// Grid arranges points row-major on a square lattice spanning [-1, 1].
func Grid(n int, seed int64) anim.PointSet {
	rng := rand.New(rand.NewSource(seed))
	side := int(math.Ceil(math.Sqrt(float64(n))))
	if side < 2 {
		side = 2
	}
	ps := anim.PointSet{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Labels: sectorLabels(n),
	}
	for i := 0; i < n; i++ {
		col := i % side
		row := i / side
		ps.X[i] = -1 + 2*float64(col)/float64(side-1) + 0.01*rng.NormFloat64()
		ps.Y[i] = -1 + 2*float64(row)/float64(side-1) + 0.01*rng.NormFloat64()
	}
	return ps
}

// Clusters draws points from Gaussian blobs, one blob per class.
func Clusters(n int, seed int64) anim.PointSet {
	rng := rand.New(rand.NewSource(seed))
	ps := anim.PointSet{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Labels: sectorLabels(n),
	}
	for i := 0; i < n; i++ {
		k := ps.Labels[i]
		theta := 2 * math.Pi * float64(k) / labelClasses
		cx, cy := 0.7*math.Cos(theta), 0.7*math.Sin(theta)
		ps.X[i] = cx + 0.12*rng.NormFloat64()
		ps.Y[i] = cy + 0.12*rng.NormFloat64()
	}
	return ps
}

// Lissajous traces a 3:2 Lissajous figure.
func Lissajous(n int, seed int64) anim.PointSet {
	rng := rand.New(rand.NewSource(seed))
	ps := anim.PointSet{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Labels: sectorLabels(n),
	}
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		ps.X[i] = math.Sin(3*t) + 0.02*rng.NormFloat64()
		ps.Y[i] = math.Sin(2*t+math.Pi/4) + 0.02*rng.NormFloat64()
	}
	return ps
}
