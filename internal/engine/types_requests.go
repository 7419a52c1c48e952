package engine

import "github.com/danieljhkim/detour/internal/transport"

// SetupRequest represents a request to save settings.
type SetupRequest struct {
	// Enabled maps each mode to whether it is offered; missing modes are disabled
	Enabled map[transport.Mode]bool

	// BusRoutes is the raw comma-separated bus route input
	BusRoutes string

	// SubwayLines is the raw comma-separated subway line input
	SubwayLines string
}

// PlanRequest represents a request to run one planning attempt.
type PlanRequest struct {
	// Destination is where the trip is going; it must not be blank
	Destination string
}
