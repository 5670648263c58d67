package config

import (
	"fmt"

	"github.com/wesleyorama2/skycast/pkg/seventimer"
)

// Validate checks a loaded configuration for constraint violations:
// coordinates within range for every named location, and known tokens
// in the defaults section. The constraints mirror the ones enforced by
// the client library at request time, so a valid config file can never
// produce a request that fails validation.
func Validate(cfg *Config) error {
	for name, loc := range cfg.Locations {
		if loc.Lat < -90 || loc.Lat > 90 {
			return fmt.Errorf("location %q: latitude must be between -90 and 90, got %v", name, loc.Lat)
		}
		if loc.Lon < -180 || loc.Lon > 180 {
			return fmt.Errorf("location %q: longitude must be between -180 and 180, got %v", name, loc.Lon)
		}
	}

	if u := cfg.Defaults.Unit; u != "" {
		if seventimer.Unit(u) != seventimer.UnitMetric && seventimer.Unit(u) != seventimer.UnitBritish {
			return fmt.Errorf("defaults: unknown unit %q", u)
		}
	}
	if tz := cfg.Defaults.Tzshift; tz != nil && (*tz < -23 || *tz > 23) {
		return fmt.Errorf("defaults: tzshift must be between -23 and 23, got %d", *tz)
	}

	return nil
}
