package engine

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/danieljhkim/detour/internal/transport"
)

// CarDetail is displayed for an available car.
const CarDetail = "about 15 minutes"

// maxDestinationDistance bounds how far a typed destination may be from a
// quick-pick to be suggested.
const maxDestinationDistance = 2

// Plan runs one planning attempt for req.Destination against the saved
// settings. Every enabled mode appears in the result, either with an
// excuse or with something to display.
func (e *Engine) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	enabled := s.EnabledModes()
	excuses, err := e.planner.PlanTrip(enabled, e.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to plan trip: %w", err)
	}

	result := &PlanResult{
		AttemptID:   e.newID(),
		Destination: destination,
		Suggestion:  e.suggestDestination(destination),
		Options:     make([]TripOption, 0, len(enabled)),
	}

	for _, m := range enabled {
		opt := TripOption{Mode: m}
		if reason, ok := excuses[m]; ok {
			opt.Excuse = reason
		} else {
			opt.Available = true
			opt.Detail = e.detailFor(m, s.RoutesFor(m))
		}
		result.Options = append(result.Options, opt)
	}

	log.Printf("planning attempt %s to %q: %d of %d modes unavailable",
		result.AttemptID, destination, len(excuses), len(enabled))

	return result, nil
}

func (e *Engine) detailFor(mode transport.Mode, routes []string) string {
	if mode == transport.Car {
		return CarDetail
	}
	return e.planner.PickDisplayRoute(routes)
}

// suggestDestination returns the quick-pick closest to destination when it
// looks like a misspelling of one. Exact matches need no suggestion.
func (e *Engine) suggestDestination(destination string) string {
	typed := strings.ToLower(destination)
	best := ""
	bestDist := maxDestinationDistance + 1
	for _, d := range e.destinations {
		dist := levenshtein.ComputeDistance(typed, strings.ToLower(d))
		if dist == 0 {
			return ""
		}
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
