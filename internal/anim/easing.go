package anim

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// EaseFunc maps transition progress in [0,1] to eased progress in [0,1].
type EaseFunc func(float64) float64

var easings = map[string]EaseFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
	"in-out-circ":  ease.InOutCirc,
	"in-out-back":  ease.InOutBack,
	"in-out-quart": ease.InOutQuart,
	"in-out-quint": ease.InOutQuint,
}

// EasingByName looks up an easing curve by its registry name.
func EasingByName(name string) (EaseFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames lists the registered easing curves in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
