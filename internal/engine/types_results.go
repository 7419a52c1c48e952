package engine

import (
	"github.com/danieljhkim/detour/internal/settings"
	"github.com/danieljhkim/detour/internal/transport"
)

// SetupResult represents the result of saving settings.
type SetupResult struct {
	// Settings are the settings as saved
	Settings *settings.Settings `json:"settings"`

	// EnabledModes are the offered modes in canonical order
	EnabledModes []transport.Mode `json:"enabledModes"`
}

// PlanResult represents the outcome of one planning attempt.
type PlanResult struct {
	// AttemptID identifies this planning attempt
	AttemptID string `json:"attemptId"`

	// Destination is the trimmed destination
	Destination string `json:"destination"`

	// Suggestion is a quick-pick destination close to Destination, if any
	Suggestion string `json:"suggestion,omitempty"`

	// Options has one entry per enabled mode, in canonical order
	Options []TripOption `json:"options"`
}

// Unavailable returns the options that were given an excuse.
func (r *PlanResult) Unavailable() []TripOption {
	var out []TripOption
	for _, o := range r.Options {
		if !o.Available {
			out = append(out, o)
		}
	}
	return out
}

// TripOption is how one enabled mode fared in a planning attempt.
type TripOption struct {
	Mode      transport.Mode `json:"mode"`
	Available bool           `json:"available"`

	// Excuse is set when the mode is unavailable
	Excuse string `json:"excuse,omitempty"`

	// Detail is what to display for an available mode (a route, a line or a duration)
	Detail string `json:"detail,omitempty"`
}

// ShowResult represents the saved settings.
type ShowResult struct {
	Settings     *settings.Settings `json:"settings"`
	EnabledModes []transport.Mode   `json:"enabledModes"`
}

// ResetResult represents the result of removing saved settings.
type ResetResult struct {
	// Removed is false when there was nothing to remove
	Removed bool `json:"removed"`
}
