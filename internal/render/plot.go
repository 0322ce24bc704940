package render

import (
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/tweenplot/internal/anim"
)

var pathColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// PlotSurface renders scatter frames with gonum/plot. Each frame is a
// fresh plot drawn onto an in-memory canvas, with axis limits, labels
// and legend fixed by Options so the viewport never jumps.
type PlotSurface struct {
	opts   Options
	title  string
	points anim.PointSet
	colors []color.Color
	pathX  []float64
	pathY  []float64
	drawn  bool
}

// NewPlotSurface creates a raster surface with the given options.
func NewPlotSurface(opts Options) *PlotSurface {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultOptions().DPI
	}
	if opts.Alpha == 0 {
		opts.Alpha = DefaultOptions().Alpha
	}
	return &PlotSurface{opts: opts}
}

// Clear discards the current scene.
func (s *PlotSurface) Clear() {
	s.points = anim.PointSet{}
	s.colors = nil
	s.pathX, s.pathY = nil, nil
	s.drawn = false
}

// SetTitle sets the frame title.
func (s *PlotSurface) SetTitle(title string) { s.title = title }

// DrawPoints sets the scatter points of the scene, one color per point.
func (s *PlotSurface) DrawPoints(ps anim.PointSet, colors []color.Color) {
	s.points = ps
	s.colors = colors
	s.drawn = true
}

// DrawPath sets the trailing path of the scene.
func (s *PlotSurface) DrawPath(x, y []float64) {
	s.pathX, s.pathY = x, y
}

// Image renders the scene to a raster frame.
func (s *PlotSurface) Image() (image.Image, error) {
	p := plot.New()
	p.Title.Text = s.title
	p.X.Label.Text = s.opts.XLabel
	p.Y.Label.Text = s.opts.YLabel

	if b := s.opts.Bounds; b != (anim.Bounds{}) {
		p.X.Min, p.X.Max = b.XMin, b.XMax
		p.Y.Min, p.Y.Max = b.YMin, b.YMax
	}

	if len(s.pathX) > 1 {
		xys := make(plotter.XYs, len(s.pathX))
		for i := range s.pathX {
			xys[i].X, xys[i].Y = s.pathX[i], s.pathY[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = withAlpha(pathColor, s.opts.Alpha)
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	if s.drawn && s.points.Len() > 0 {
		xys := make(plotter.XYs, s.points.Len())
		for i := range s.points.X {
			xys[i].X, xys[i].Y = s.points.X[i], s.points.Y[i]
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = vgdraw.CircleGlyph{}
		colors := s.colors
		alpha := s.opts.Alpha
		scatter.GlyphStyleFunc = func(i int) vgdraw.GlyphStyle {
			style := vgdraw.GlyphStyle{Radius: vg.Points(3), Shape: vgdraw.CircleGlyph{}}
			if i < len(colors) {
				style.Color = withAlpha(colors[i], alpha)
			} else {
				style.Color = withAlpha(pathColor, alpha)
			}
			return style
		}
		p.Add(scatter)
	}

	for _, entry := range s.opts.Legend {
		thumb, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
		if err != nil {
			return nil, err
		}
		thumb.GlyphStyle.Color = entry.Color
		thumb.GlyphStyle.Radius = vg.Points(3)
		thumb.GlyphStyle.Shape = vgdraw.CircleGlyph{}
		p.Legend.Add(entry.Name, thumb)
	}
	if len(s.opts.Legend) > 0 {
		p.Legend.Top = true
	}

	dpi := float64(s.opts.DPI)
	w := vg.Length(float64(s.opts.Width)/dpi) * vg.Inch
	h := vg.Length(float64(s.opts.Height)/dpi) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(s.opts.DPI))
	p.Draw(vgdraw.New(c))
	return c.Image(), nil
}
