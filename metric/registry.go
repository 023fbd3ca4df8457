package metric

import (
	"sort"
	"sync"

	"github.com/colourlab/go-colourmetric/config"
	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
)

// Params carries the tunable factors of the registered models. Models ignore
// the fields they have no use for.
type Params struct {
	KL, KC, Kh float64 // CIEDE2000 parametric weights
	R          float64 // hyperbolic curvature radius
}

// DefaultParams returns the reference-condition parameters.
func DefaultParams() Params {
	return Params{KL: 1, KC: 1, Kh: 1, R: config.DEFAULT_RADIUS}
}

// Builder is the uniform contract every perceptual model conforms to.
type Builder func(pts *data.Points, p Params) *Result

var (
	registryLock sync.RWMutex
	registry     = make(map[string]Builder)
)

// Register adds a named model. Later registrations under the same name win,
// so callers can override the built-in set.
func Register(name string, builder Builder) {
	registryLock.Lock()
	registry[name] = builder
	registryLock.Unlock()
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, bool) {
	registryLock.RLock()
	builder, ok := registry[name]
	registryLock.RUnlock()
	return builder, ok
}

// Models returns the registered model names, sorted.
func Models() []string {
	registryLock.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryLock.RUnlock()
	sort.Strings(names)
	return names
}

func init() {
	Register("cielab", func(pts *data.Points, _ Params) *Result { return DEab(pts) })
	Register("cieluv", func(pts *data.Points, _ Params) *Result { return DEuv(pts) })
	Register("e", func(pts *data.Points, _ Params) *Result { return DEE(pts) })
	Register("din99", func(pts *data.Points, _ Params) *Result { return DEDIN99(pts) })
	Register("din99b", func(pts *data.Points, _ Params) *Result { return DEDIN99b(pts) })
	Register("din99c", func(pts *data.Points, _ Params) *Result { return DEDIN99c(pts) })
	Register("din99d", func(pts *data.Points, _ Params) *Result { return DEDIN99d(pts) })
	Register("ciede2000", func(pts *data.Points, p Params) *Result { return DE00(pts, p.KL, p.KC, p.Kh) })
	Register("poincare", func(pts *data.Points, p Params) *Result {
		return PoincareDisk(space.NewPoincareDisk(space.NewCIELAB(space.WhiteD65), p.R), pts)
	})
}
