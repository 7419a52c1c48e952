package excuse

import (
	"fmt"

	"github.com/danieljhkim/detour/internal/random"
	"github.com/danieljhkim/detour/internal/transport"
)

const (
	// DefaultUnavailableProbability is the chance that an enabled mode is
	// judged unavailable in a single planning attempt.
	DefaultUnavailableProbability = 0.3

	// FallbackRoute is shown for an available mode with no configured routes.
	FallbackRoute = "random route"
)

// Result maps each mode judged unavailable to the excuse chosen for it.
// A mode absent from the map is either disabled or available.
type Result map[transport.Mode]string

// Unavailable reports whether mode was judged unavailable.
func (r Result) Unavailable(mode transport.Mode) bool {
	_, ok := r[mode]
	return ok
}

// Engine runs planning attempts.
type Engine struct {
	src         random.Source
	probability float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithUnavailableProbability overrides DefaultUnavailableProbability.
// Values outside [0, 1] are clamped.
func WithUnavailableProbability(p float64) Option {
	return func(e *Engine) {
		switch {
		case p < 0:
			p = 0
		case p > 1:
			p = 1
		}
		e.probability = p
	}
}

// NewEngine creates an Engine drawing from src.
func NewEngine(src random.Source, opts ...Option) *Engine {
	e := &Engine{
		src:         src,
		probability: DefaultUnavailableProbability,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Probability returns the per-mode chance of being judged unavailable.
func (e *Engine) Probability() float64 {
	return e.probability
}

// PlanTrip judges every enabled mode independently and returns the ones
// found unavailable, each paired with an excuse drawn uniformly from the
// catalog. Modes are evaluated in canonical order; duplicates are ignored.
//
// An error is returned only for a mode that is unknown or has no catalog
// entry, which indicates a broken catalog rather than a runtime condition.
func (e *Engine) PlanTrip(enabled []transport.Mode, catalog Catalog) (Result, error) {
	want := make(map[transport.Mode]bool, len(enabled))
	for _, m := range enabled {
		if !m.Valid() {
			return nil, fmt.Errorf("unknown transport mode %q", m)
		}
		if len(catalog[m]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingExcuses, m)
		}
		want[m] = true
	}

	result := make(Result)
	for _, m := range transport.All() {
		if !want[m] {
			continue
		}

		// Available when the draw lands at or above the probability.
		if e.src.Float64() >= e.probability {
			continue
		}

		excuses := catalog[m]
		result[m] = excuses[e.src.IntN(len(excuses))]
	}

	return result, nil
}

// PickDisplayRoute returns one of routes chosen uniformly, or FallbackRoute
// when routes is empty.
func (e *Engine) PickDisplayRoute(routes []string) string {
	if len(routes) == 0 {
		return FallbackRoute
	}
	return routes[e.src.IntN(len(routes))]
}
