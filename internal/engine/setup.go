package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/danieljhkim/detour/internal/settings"
	"github.com/danieljhkim/detour/internal/transport"
)

// Setup replaces the saved settings with the ones described by req.
func (e *Engine) Setup(ctx context.Context, req *SetupRequest) (*SetupResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := make(map[transport.Mode]bool, len(transport.All()))
	for _, m := range transport.All() {
		opts[m] = false
	}
	for m, on := range req.Enabled {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: unknown transport mode %q", ErrValidation, m)
		}
		opts[m] = on
	}

	s := &settings.Settings{
		TransportOptions: opts,
		BusRoutes:        settings.ParseRouteList(req.BusRoutes),
		SubwayLines:      settings.ParseRouteList(req.SubwayLines),
		SavedAt:          e.now().UTC(),
	}

	if err := e.store.Save(s); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("settings saved: modes=%v busRoutes=%d subwayLines=%d",
		s.EnabledModes(), len(s.BusRoutes), len(s.SubwayLines))

	return &SetupResult{
		Settings:     s,
		EnabledModes: s.EnabledModes(),
	}, nil
}
