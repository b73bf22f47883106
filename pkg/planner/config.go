package planner

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxTransfers  = 2
	DefaultMaxPaths      = 10
	DefaultMaxDistanceKm = 50.0
	DefaultMaxIterations = 10000
	DefaultTimeBudget    = 5 * time.Second
)

type Config struct {
	MaxTransfers int `yaml:"max_transfers" validate:"gte=0"`
	MaxPaths     int `yaml:"max_paths" validate:"gte=1"`

	// Advisory only, the search never cuts on it. See FilterByDistance.
	MaxDistanceKm float64 `yaml:"max_distance_km" validate:"gte=0"`

	MaxIterations int           `yaml:"max_iterations" validate:"gte=1"`
	TimeBudget    time.Duration `yaml:"time_budget" validate:"gt=0"`
}

func DefaultConfig() Config {
	return Config{
		MaxTransfers:  DefaultMaxTransfers,
		MaxPaths:      DefaultMaxPaths,
		MaxDistanceKm: DefaultMaxDistanceKm,
		MaxIterations: DefaultMaxIterations,
		TimeBudget:    DefaultTimeBudget,
	}
}

var configValidator = validator.New()

func (c Config) Validate() error {
	return configValidator.Struct(c)
}

// UnmarshalYAML starts from the defaults so a config file only lists what it overrides
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plainConfig Config
	decoded := plainConfig(DefaultConfig())

	if err := value.Decode(&decoded); err != nil {
		return err
	}

	*c = Config(decoded)
	return nil
}

// withDefaults replaces unusable values so a search can always run
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()

	if c.MaxTransfers < 0 {
		c.MaxTransfers = 0
	}
	if c.MaxPaths < 1 {
		c.MaxPaths = defaults.MaxPaths
	}
	if c.MaxDistanceKm < 0 {
		c.MaxDistanceKm = 0
	}
	if c.MaxIterations < 1 {
		c.MaxIterations = defaults.MaxIterations
	}
	if c.TimeBudget <= 0 {
		c.TimeBudget = defaults.TimeBudget
	}

	return c
}
