package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danieljhkim/detour/internal/fsops"
	"github.com/danieljhkim/detour/internal/transport"
)

// FileName is the name of the settings entry under the data root.
const FileName = "travelSettings.json"

var (
	// ErrNotConfigured indicates no settings have been saved yet.
	ErrNotConfigured = errors.New("settings not configured")

	// ErrMalformed indicates the stored settings could not be understood.
	ErrMalformed = errors.New("malformed settings")
)

// Store provides an interface for persisting settings.
type Store interface {
	// Load reads the saved settings.
	// Returns ErrNotConfigured if nothing has been saved.
	Load() (*Settings, error)

	// Save replaces the saved settings atomically.
	Save(s *Settings) error

	// Delete removes the saved settings. Deleting absent settings is not an error.
	Delete() error

	// Exists reports whether settings have been saved.
	Exists() (bool, error)
}

// FileStore implements Store using a JSON file on disk.
type FileStore struct {
	fs   fsops.FS
	path string
}

// NewFileStore creates a FileStore keeping its entry in dir.
func NewFileStore(fs fsops.FS, dir string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: filepath.Join(dir, FileName),
	}
}

// Path returns the location of the settings file.
func (s *FileStore) Path() string {
	return s.path
}

// storedSettings is the on-disk shape. It also accepts the older
// single-mode layout, which carried only selectedTransport.
type storedSettings struct {
	TransportOptions  map[string]bool `json:"transportOptions" validate:"omitempty,dive,keys,oneof=bus subway car,endkeys"`
	SelectedTransport string          `json:"selectedTransport,omitempty"`
	BusRoutes         []string        `json:"busRoutes"`
	SubwayLines       []string        `json:"subwayLines"`
	SavedAt           time.Time       `json:"savedAt,omitzero"`
}

// Load reads the settings file.
func (s *FileStore) Load() (*Settings, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return Decode(data)
}

// Decode parses stored settings, converting the single-mode layout to the
// per-mode layout.
func Decode(data []byte) (*Settings, error) {
	var stored storedSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := validator.New().Struct(stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	settings := &Settings{
		TransportOptions: make(map[transport.Mode]bool, 3),
		BusRoutes:        compactLabels(stored.BusRoutes),
		SubwayLines:      compactLabels(stored.SubwayLines),
		SavedAt:          stored.SavedAt,
	}

	switch {
	case stored.TransportOptions != nil:
		for name, on := range stored.TransportOptions {
			settings.TransportOptions[transport.Mode(name)] = on
		}
	case stored.SelectedTransport != "":
		selected := transport.Mode(stored.SelectedTransport)
		if !selected.Valid() {
			return nil, fmt.Errorf("%w: unknown selectedTransport %q", ErrMalformed, stored.SelectedTransport)
		}
		for _, m := range transport.All() {
			settings.TransportOptions[m] = m == selected
		}
	default:
		return nil, fmt.Errorf("%w: neither transportOptions nor selectedTransport present", ErrMalformed)
	}

	return settings, nil
}

// Save writes the settings file atomically.
func (s *FileStore) Save(settings *Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Delete removes the settings file.
func (s *FileStore) Delete() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}

// Exists reports whether the settings file is present.
func (s *FileStore) Exists() (bool, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return false, fmt.Errorf("failed to check settings: %w", err)
	}
	return exists, nil
}
