package excuse

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/detour/internal/transport"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrMissingExcuses indicates the catalog has no excuses for a mode.
var ErrMissingExcuses = errors.New("no excuses for transport mode")

// Catalog maps each transport mode to its fixed, ordered list of excuses.
// Catalogs are never mutated after loading.
type Catalog map[transport.Mode][]string

// catalogFile is the on-disk shape of catalog.yaml.
type catalogFile struct {
	Excuses map[string][]string `yaml:"excuses" validate:"required,dive,keys,oneof=bus subway car,endkeys,min=1,dive,required"`
}

var defaultCatalog = MustLoadCatalog(catalogYAML)

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultCatalog
}

// LoadCatalog decodes and validates a YAML catalog. Every known mode must
// have at least one non-empty excuse.
func LoadCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode excuse catalog: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid excuse catalog: %w", err)
	}

	catalog := make(Catalog, len(file.Excuses))
	for name, excuses := range file.Excuses {
		catalog[transport.Mode(name)] = excuses
	}

	for _, m := range transport.All() {
		if len(catalog[m]) == 0 {
			return nil, fmt.Errorf("invalid excuse catalog: %w: %s", ErrMissingExcuses, m)
		}
	}

	return catalog, nil
}

// MustLoadCatalog is like LoadCatalog but panics on error. It is intended
// for catalogs fixed at build time.
func MustLoadCatalog(data []byte) Catalog {
	catalog, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Has reports whether excuse is one of the catalog's entries for mode.
func (c Catalog) Has(mode transport.Mode, excuse string) bool {
	for _, e := range c[mode] {
		if e == excuse {
			return true
		}
	}
	return false
}
