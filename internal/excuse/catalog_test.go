package excuse

import (
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/detour/internal/transport"
)

func TestDefault_CoversEveryMode(t *testing.T) {
	catalog := Default()
	for _, m := range transport.All() {
		excuses := catalog[m]
		if len(excuses) != 4 {
			t.Errorf("Default()[%s] has %d excuses, want 4", m, len(excuses))
		}
		for i, e := range excuses {
			if strings.TrimSpace(e) == "" {
				t.Errorf("Default()[%s][%d] is empty", m, i)
			}
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		wantIs  error
	}{
		{
			name: "valid",
			yaml: `
excuses:
  bus: ["a"]
  subway: ["b", "c"]
  car: ["d"]
`,
		},
		{
			name: "missing mode",
			yaml: `
excuses:
  bus: ["a"]
  subway: ["b"]
`,
			wantErr: true,
			wantIs:  ErrMissingExcuses,
		},
		{
			name: "unknown mode",
			yaml: `
excuses:
  bus: ["a"]
  subway: ["b"]
  car: ["c"]
  boat: ["d"]
`,
			wantErr: true,
		},
		{
			name: "empty list",
			yaml: `
excuses:
  bus: []
  subway: ["b"]
  car: ["c"]
`,
			wantErr: true,
		},
		{
			name: "empty excuse",
			yaml: `
excuses:
  bus: [""]
  subway: ["b"]
  car: ["c"]
`,
			wantErr: true,
		},
		{
			name:    "no excuses key",
			yaml:    "other: 1\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "excuses: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := LoadCatalog([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatal("LoadCatalog() expected error, got nil")
				}
				if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
					t.Errorf("LoadCatalog() error = %v, want errors.Is %v", err, tt.wantIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadCatalog() error = %v", err)
			}
			if len(catalog[transport.Subway]) != 2 {
				t.Errorf("subway excuses = %v, want 2 entries", catalog[transport.Subway])
			}
		})
	}
}

func TestMustLoadCatalog_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoadCatalog() should panic on an incomplete catalog")
		}
	}()
	MustLoadCatalog([]byte("excuses:\n  bus: [\"a\"]\n"))
}

func TestCatalog_Has(t *testing.T) {
	catalog := Catalog{transport.Car: {"keys lost"}}
	if !catalog.Has(transport.Car, "keys lost") {
		t.Error("Has() should find an existing excuse")
	}
	if catalog.Has(transport.Car, "made up") {
		t.Error("Has() should not find a fabricated excuse")
	}
	if catalog.Has(transport.Bus, "keys lost") {
		t.Error("Has() should not match across modes")
	}
}
