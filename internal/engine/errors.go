package engine

import (
	"errors"

	"github.com/danieljhkim/detour/internal/settings"
)

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNotConfigured indicates no settings have been saved yet.
	ErrNotConfigured = settings.ErrNotConfigured
)
