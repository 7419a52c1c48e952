// Package engine provides the core operations behind the detour CLI.
//
// The engine package acts as the orchestration layer between CLI commands and
// the lower-level packages. It loads and saves settings through an injected
// settings.Store and runs planning attempts through an excuse.Engine.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Setup/Show/Reset: manage the saved settings
//   - Plan: run one planning attempt for a destination
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danieljhkim/detour/internal/excuse"
	"github.com/danieljhkim/detour/internal/settings"
)

// Engine orchestrates all detour operations.
// It is the main API surface called by the CLI.
type Engine struct {
	store        settings.Store
	planner      *excuse.Engine
	catalog      excuse.Catalog
	destinations []string

	now   func() time.Time
	newID func() string
}

// New creates a new Engine with the given dependencies.
func New(
	store settings.Store,
	planner *excuse.Engine,
	catalog excuse.Catalog,
	destinations []string,
) *Engine {
	return &Engine{
		store:        store,
		planner:      planner,
		catalog:      catalog,
		destinations: append([]string(nil), destinations...),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Show returns the saved settings.
func (e *Engine) Show(ctx context.Context) (*ShowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := e.store.Load()
	if err != nil {
		return nil, err
	}

	return &ShowResult{
		Settings:     s,
		EnabledModes: s.EnabledModes(),
	}, nil
}

// Reset removes the saved settings so the next plan requires setup again.
func (e *Engine) Reset(ctx context.Context) (*ResetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exists, err := e.store.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return &ResetResult{Removed: false}, nil
	}

	if err := e.store.Delete(); err != nil {
		return nil, err
	}

	return &ResetResult{Removed: true}, nil
}

// Destinations returns the quick-pick destinations.
func (e *Engine) Destinations() []string {
	return append([]string(nil), e.destinations...)
}
