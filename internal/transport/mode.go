// Package transport defines the closed set of transport modes detour can
// simulate a trip with.
package transport

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Mode is a category of simulated travel option.
type Mode string

const (
	Bus    Mode = "bus"
	Subway Mode = "subway"
	Car    Mode = "car"
)

// maxSuggestDistance is the largest edit distance for which ParseMode
// offers a "did you mean" hint.
const maxSuggestDistance = 2

// All returns every mode in canonical order (bus, subway, car).
func All() []Mode {
	return []Mode{Bus, Subway, Car}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case Bus, Subway, Car:
		return true
	}
	return false
}

// HasRoutes reports whether the mode carries user-supplied route or line labels.
func (m Mode) HasRoutes() bool {
	return m == Bus || m == Subway
}

func (m Mode) String() string {
	return string(m)
}

// Label is the human-facing name of the mode.
func (m Mode) Label() string {
	switch m {
	case Bus:
		return "Bus"
	case Subway:
		return "Subway"
	case Car:
		return "Car"
	}
	return string(m)
}

// ParseMode parses a mode name case-insensitively. An unknown name yields
// an error that names the closest known mode when one is near enough.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if m := Mode(name); m.Valid() {
		return m, nil
	}

	if name == "" {
		return "", fmt.Errorf("transport mode must not be empty")
	}

	if suggestion, ok := Suggest(name); ok {
		return "", fmt.Errorf("unknown transport mode %q, did you mean %q?", s, suggestion)
	}
	return "", fmt.Errorf("unknown transport mode %q (want one of bus, subway, car)", s)
}

// ParseModes parses every name in names, failing on the first unknown one.
// Duplicates are collapsed and the result is in canonical order.
func ParseModes(names []string) ([]Mode, error) {
	seen := make(map[Mode]bool, len(names))
	for _, n := range names {
		m, err := ParseMode(n)
		if err != nil {
			return nil, err
		}
		seen[m] = true
	}

	var modes []Mode
	for _, m := range All() {
		if seen[m] {
			modes = append(modes, m)
		}
	}
	return modes, nil
}

// Suggest returns the known mode closest to name by edit distance.
func Suggest(name string) (Mode, bool) {
	best := Mode("")
	bestDist := maxSuggestDistance + 1
	for _, m := range All() {
		d := levenshtein.ComputeDistance(name, string(m))
		if d < bestDist {
			best, bestDist = m, d
		}
	}
	return best, best != ""
}
