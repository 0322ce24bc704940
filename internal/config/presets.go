package config

// Presets are ready-made demo animations for the CLI.
var Presets = map[string]*Config{
	"tour": {
		Layouts: []string{"circle", "spiral", "grid", "clusters"},
		Titles:  []string{"circle", "spiral", "grid", "clusters"},
		Points:  80, Seed: 1,
		HoldFrames: 15, TransitionFrames: 45,
		Easing: "in-out-cubic",
		Legend: true,
	},
	"collapse": {
		Layouts: []string{"clusters", "circle"},
		Titles:  []string{"clusters", "circle"},
		Points:  120, Seed: 3,
		HoldFrames: 20, TransitionFrames: 60,
		Easing: "in-out-quad",
		Legend: true,
	},
	"weave": {
		Layouts: []string{"lissajous", "spiral", "lissajous"},
		Titles:  []string{"3:2", "spiral", "3:2"},
		Points:  150, Seed: 5,
		HoldFrames: 10, TransitionFrames: 50,
		Easing: "in-out-sine",
	},
}

// Preset returns a full config for the named preset, with defaults
// filled in for every unset field.
func Preset(name string) (*Config, bool) {
	p, ok := Presets[name]
	if !ok {
		return nil, false
	}
	cfg := Default()
	cfg.Layouts = p.Layouts
	cfg.Titles = p.Titles
	cfg.Legend = p.Legend
	if p.Points > 0 {
		cfg.Points = p.Points
	}
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}
	if p.HoldFrames > 0 {
		cfg.HoldFrames = p.HoldFrames
	}
	if p.TransitionFrames > 0 {
		cfg.TransitionFrames = p.TransitionFrames
	}
	if p.Easing != "" {
		cfg.Easing = p.Easing
	}
	return cfg, true
}

// PresetNames lists the available presets.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
