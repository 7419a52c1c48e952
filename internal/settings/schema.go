package settings

import (
	"fmt"
	"time"

	"github.com/danieljhkim/detour/internal/transport"
)

// Settings captures which transport modes are offered and the labels to
// display for them.
type Settings struct {
	// TransportOptions maps each mode to whether it is offered
	TransportOptions map[transport.Mode]bool `json:"transportOptions"`

	// BusRoutes are the bus route labels, in the order the user entered them
	BusRoutes []string `json:"busRoutes"`

	// SubwayLines are the subway line labels, in the order the user entered them
	SubwayLines []string `json:"subwayLines"`

	// SavedAt is when the settings were last saved
	SavedAt time.Time `json:"savedAt,omitzero"`
}

// Default returns settings with every mode enabled and no labels.
func Default() *Settings {
	opts := make(map[transport.Mode]bool, 3)
	for _, m := range transport.All() {
		opts[m] = true
	}
	return &Settings{
		TransportOptions: opts,
		BusRoutes:        []string{},
		SubwayLines:      []string{},
	}
}

// Enabled reports whether mode is offered.
func (s *Settings) Enabled(mode transport.Mode) bool {
	return s.TransportOptions[mode]
}

// EnabledModes returns the offered modes in canonical order.
func (s *Settings) EnabledModes() []transport.Mode {
	var modes []transport.Mode
	for _, m := range transport.All() {
		if s.TransportOptions[m] {
			modes = append(modes, m)
		}
	}
	return modes
}

// RoutesFor returns the labels configured for mode, or nil for modes that
// carry none.
func (s *Settings) RoutesFor(mode transport.Mode) []string {
	switch mode {
	case transport.Bus:
		return s.BusRoutes
	case transport.Subway:
		return s.SubwayLines
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	out := &Settings{
		TransportOptions: make(map[transport.Mode]bool, len(s.TransportOptions)),
		BusRoutes:        append([]string{}, s.BusRoutes...),
		SubwayLines:      append([]string{}, s.SubwayLines...),
		SavedAt:          s.SavedAt,
	}
	for m, on := range s.TransportOptions {
		out.TransportOptions[m] = on
	}
	return out
}

// Validate checks that only known modes appear and labels are non-empty.
func (s *Settings) Validate() error {
	if s.TransportOptions == nil {
		return fmt.Errorf("%w: transport options missing", ErrMalformed)
	}
	for m := range s.TransportOptions {
		if !m.Valid() {
			return fmt.Errorf("%w: unknown transport mode %q", ErrMalformed, m)
		}
	}
	for _, labels := range [][]string{s.BusRoutes, s.SubwayLines} {
		for _, l := range labels {
			if l == "" {
				return fmt.Errorf("%w: empty route label", ErrMalformed)
			}
		}
	}
	return nil
}
