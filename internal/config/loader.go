package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no explicit path is
// given. A missing default file is not an error; an explicit path that
// does not exist is.
const DefaultPath = "skycast.yaml"

// Config holds named locations and request defaults for the CLI.
type Config struct {
	Locations map[string]Location `yaml:"locations,omitempty"`
	Defaults  Defaults            `yaml:"defaults,omitempty"`
}

// Location is a named coordinate pair.
type Location struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Defaults are request parameters applied when the corresponding flag
// is not set on the command line.
type Defaults struct {
	Unit    string `yaml:"unit,omitempty"`
	Lang    string `yaml:"lang,omitempty"`
	Tzshift *int   `yaml:"tzshift,omitempty"`
}

// Load reads and validates a configuration file. With an empty path the
// default location is tried and an empty Config is returned when it does
// not exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Lookup resolves a named location.
func (c *Config) Lookup(name string) (Location, bool) {
	loc, ok := c.Locations[name]
	return loc, ok
}
