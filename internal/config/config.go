package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. DETOUR_PLANNER_SEED for planner.seed.
const EnvPrefix = "DETOUR"

// DefaultDestinations are the quick-pick destinations offered by default.
var DefaultDestinations = []string{
	"kindergarten",
	"park",
	"supermarket",
	"playground",
	"grandma's house",
	"library",
}

// Config holds application configuration.
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Log     LogConfig     `mapstructure:"log"`
}

// PlannerConfig tunes planning attempts.
type PlannerConfig struct {
	// UnavailableProbability is the chance that an enabled mode gets an excuse
	UnavailableProbability float64 `mapstructure:"unavailable_probability" validate:"gte=0,lte=1"`

	// Seed fixes the random sequence when non-zero
	Seed uint64 `mapstructure:"seed"`

	// Destinations are the quick-pick destinations
	Destinations []string `mapstructure:"destinations" validate:"dive,required"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from the config file under paths (if present)
// and from DETOUR_-prefixed environment variables.
func Load(paths *Paths) (Config, error) {
	v := viper.New()

	v.SetDefault("planner.unavailable_probability", 0.3)
	v.SetDefault("planner.seed", 0)
	v.SetDefault("planner.destinations", DefaultDestinations)
	v.SetDefault("log.verbose", false)

	v.SetConfigType("yaml")
	v.SetConfigFile(paths.Config)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", paths.Config, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}
