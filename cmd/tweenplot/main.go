package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tweenplot/internal/anim"
	"github.com/san-kum/tweenplot/internal/config"
	"github.com/san-kum/tweenplot/internal/engine"
	"github.com/san-kum/tweenplot/internal/export"
	"github.com/san-kum/tweenplot/internal/layout"
	"github.com/san-kum/tweenplot/internal/palette"
	"github.com/san-kum/tweenplot/internal/render"
	"github.com/san-kum/tweenplot/internal/tui"
)

var (
	configFile       string
	preset           string
	layoutNames      []string
	titles           []string
	points           int
	seed             int64
	width            int
	height           int
	dpi              int
	fps              int
	holdFrames       int
	transitionFrames int
	framesPerPoint   int
	easingName       string
	padding          float64
	legend           bool
	xLabel           string
	yLabel           string
	outPath          string
	// easing command
	curveFrames int
	// live view size
	liveWidth  int
	liveHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tweenplot",
		Short: "animated scatter transitions between 2D layouts",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render an animation to GIF or HTML",
		RunE:  runRender,
	}
	addAnimFlags(renderCmd)
	renderCmd.Flags().StringVar(&outPath, "out", "anim.gif", "output file (.gif or .html)")

	revealCmd := &cobra.Command{
		Use:   "reveal [layout]",
		Short: "render a progressive point reveal of one layout",
		Args:  cobra.ExactArgs(1),
		RunE:  runReveal,
	}
	revealCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of points")
	revealCmd.Flags().Int64Var(&seed, "seed", 0, "layout seed")
	revealCmd.Flags().IntVar(&framesPerPoint, "frames-per-point", config.DefaultFramesPerPoint, "sub-frames per point")
	revealCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	revealCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	revealCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	revealCmd.Flags().StringVar(&outPath, "out", "reveal.gif", "output file (.gif or .html)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play the animation in the terminal",
		RunE:  runLive,
	}
	addAnimFlags(liveCmd)
	liveCmd.Flags().IntVar(&liveWidth, "cols", 64, "canvas width in cells")
	liveCmd.Flags().IntVar(&liveHeight, "rows", 20, "canvas height in cells")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets, layouts and easing curves",
		RunE:  listPresets,
	}

	easingCmd := &cobra.Command{
		Use:   "easing [name]",
		Short: "plot an easing curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotEasing,
	}
	easingCmd.Flags().IntVar(&curveFrames, "frames", 60, "samples along the curve")

	rootCmd.AddCommand(renderCmd, revealCmd, liveCmd, presetsCmd, easingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addAnimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset animation")
	cmd.Flags().StringSliceVar(&layoutNames, "layouts", nil, "layout sequence")
	cmd.Flags().StringSliceVar(&titles, "titles", nil, "per-layout titles")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of points")
	cmd.Flags().Int64Var(&seed, "seed", 0, "layout seed")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	cmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "render resolution")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().IntVar(&holdFrames, "hold", config.DefaultHoldFrames, "hold frames per layout")
	cmd.Flags().IntVar(&transitionFrames, "transition", config.DefaultTransitionFrames, "transition frames between layouts")
	cmd.Flags().StringVar(&easingName, "easing", "linear", "transition easing curve")
	cmd.Flags().Float64Var(&padding, "padding", config.DefaultPadding, "viewport padding")
	cmd.Flags().BoolVar(&legend, "legend", false, "color by class and draw a legend")
	cmd.Flags().StringVar(&xLabel, "x-label", "X", "x axis name")
	cmd.Flags().StringVar(&yLabel, "y-label", "Y", "y axis name")
}

// resolveConfig layers a config file or preset under any explicitly
// set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		p, ok := config.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q, try: %s", preset, strings.Join(config.PresetNames(), ", "))
		}
		cfg = p
	default:
		cfg = config.Default()
		cfg.Layouts = []string{"circle", "grid"}
	}

	flags := cmd.Flags()
	if flags.Changed("layouts") {
		cfg.Layouts = layoutNames
	}
	if flags.Changed("titles") {
		cfg.Titles = titles
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("dpi") {
		cfg.DPI = dpi
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("hold") {
		cfg.HoldFrames = holdFrames
	}
	if flags.Changed("transition") {
		cfg.TransitionFrames = transitionFrames
	}
	if flags.Changed("easing") {
		cfg.Easing = easingName
	}
	if flags.Changed("padding") {
		p := padding
		cfg.Padding = &p
	}
	if flags.Changed("legend") {
		cfg.Legend = legend
	}
	if flags.Changed("x-label") {
		cfg.XLabel = xLabel
	}
	if flags.Changed("y-label") {
		cfg.YLabel = yLabel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup builds the scheduler, color resolver and raster options shared
// by the render and live commands.
func setup(cfg *config.Config) (*anim.Scheduler, *palette.Resolver, render.Options, error) {
	seq, err := layout.Build(cfg.Layouts, cfg.Points, cfg.Seed)
	if err != nil {
		return nil, nil, render.Options{}, err
	}

	opts := []anim.Option{}
	if len(cfg.Titles) > 0 {
		opts = append(opts, anim.WithTitles(cfg.Titles))
	}
	if cfg.Easing != "" {
		fn, err := anim.EasingByName(cfg.Easing)
		if err != nil {
			return nil, nil, render.Options{}, err
		}
		opts = append(opts, anim.WithEasing(fn))
	}

	timing := anim.Timing{HoldFrames: cfg.HoldFrames, TransitionFrames: cfg.TransitionFrames}
	sched, err := anim.NewScheduler(seq, timing, opts...)
	if err != nil {
		return nil, nil, render.Options{}, err
	}

	bounds := sched.Bounds().Pad(cfg.Pad())
	if len(cfg.XLim) == 2 {
		bounds.XMin, bounds.XMax = cfg.XLim[0], cfg.XLim[1]
	}
	if len(cfg.YLim) == 2 {
		bounds.YMin, bounds.YMax = cfg.YLim[0], cfg.YLim[1]
	}

	var resolver *palette.Resolver
	rOpts := render.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		DPI:    cfg.DPI,
		Bounds: bounds,
		XLabel: cfg.XLabel,
		YLabel: cfg.YLabel,
	}
	if cfg.Legend {
		resolver = palette.Auto()
		entries, err := resolver.Legend(seq[0].Labels)
		if err != nil {
			return nil, nil, render.Options{}, err
		}
		rOpts.Legend = entries
	}
	return sched, resolver, rOpts, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, resolver, rOpts, err := setup(cfg)
	if err != nil {
		return err
	}

	surf := render.NewPlotSurface(rOpts)
	animator, err := engine.New(sched, resolver, surf)
	if err != nil {
		return err
	}

	frames, err := animator.Frames(cmd.Context(), export.PrintProgress(os.Stdout))
	if err != nil {
		return err
	}
	if err := writeOut(outPath, frames, cfg.FPS, strings.Join(cfg.Layouts, " -> ")); err != nil {
		return err
	}
	fmt.Printf("\nwrote %s (%d frames)\n", outPath, len(frames))
	return nil
}

func runReveal(cmd *cobra.Command, args []string) error {
	gen, ok := layout.Generators[args[0]]
	if !ok {
		return fmt.Errorf("unknown layout %q, try: %s", args[0], strings.Join(layout.Names(), ", "))
	}
	ps := gen(points, seed)

	sched, err := anim.NewRevealScheduler(ps, framesPerPoint, args[0])
	if err != nil {
		return err
	}

	surf := render.NewPlotSurface(render.Options{
		Width:  width,
		Height: height,
		Bounds: sched.Bounds().Pad(config.DefaultPadding),
		XLabel: "X",
		YLabel: "Y",
	})
	animator, err := engine.NewReveal(sched, nil, surf)
	if err != nil {
		return err
	}

	frames, err := animator.Frames(cmd.Context(), export.PrintProgress(os.Stdout))
	if err != nil {
		return err
	}
	if err := writeOut(outPath, frames, fps, args[0]); err != nil {
		return err
	}
	fmt.Printf("\nwrote %s (%d frames)\n", outPath, len(frames))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, resolver, rOpts, err := setup(cfg)
	if err != nil {
		return err
	}

	surf := render.NewBrailleSurface(liveWidth, liveHeight, rOpts.Bounds)
	animator, err := engine.New(sched, resolver, surf)
	if err != nil {
		return err
	}
	return tui.Run(animator, surf, cfg.FPS)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PRESET\tLAYOUTS\tEASING")
	names := config.PresetNames()
	sort.Strings(names)
	for _, name := range names {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(p.Layouts, ","), p.Easing)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "layouts:\t%s\n", strings.Join(layout.Names(), ", "))
	fmt.Fprintf(w, "easings:\t%s\n", strings.Join(anim.EasingNames(), ", "))
	return w.Flush()
}

func plotEasing(cmd *cobra.Command, args []string) error {
	fn, err := anim.EasingByName(args[0])
	if err != nil {
		return err
	}
	if curveFrames < 2 {
		return fmt.Errorf("frames must be at least 2, got %d", curveFrames)
	}

	data := make([]float64, curveFrames)
	for i := range data {
		data[i] = fn(float64(i) / float64(curveFrames-1))
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(args[0]),
	)
	fmt.Println(graph)
	return nil
}

func writeOut(path string, frames []image.Image, fps int, title string) error {
	switch filepath.Ext(path) {
	case ".gif":
		return export.WriteGIF(path, frames, fps, nil)
	case ".html":
		return export.WriteHTML(path, frames, fps, title, nil)
	default:
		return fmt.Errorf("unsupported output format %q, want .gif or .html", filepath.Ext(path))
	}
}
