// Package config loads and validates the engine's external inputs: the
// assessment snapshot, the service catalog, and the tunable heuristic
// constants. Input documents are YAML; structural validation runs before any
// document is converted into domain types.
package config

// Tunables are the heuristic constants of the engine. They are business
// parameters with no empirical calibration behind them, so they load from
// configuration instead of being hard invariants.
type Tunables struct {
	// Labor estimation.
	HourlyLaborRate          float64 `yaml:"hourly_labor_rate" validate:"gt=0"`
	DefaultAreaSqFt          float64 `yaml:"default_area_sqft" validate:"gt=0"`
	BaseHoursPerThousandSqFt float64 `yaml:"base_hours_per_thousand_sqft" validate:"gt=0"`
	SeverityLaborFactor      float64 `yaml:"severity_labor_factor" validate:"gte=1"`

	// Result confidence thresholds (0-100 scale).
	ConfidenceHighThreshold   float64 `yaml:"confidence_high_threshold" validate:"gt=0,lte=100"`
	ConfidenceMediumThreshold float64 `yaml:"confidence_medium_threshold" validate:"gte=0,ltefield=ConfidenceHighThreshold"`

	// Sanity range for the composed total multiplier; values outside it
	// produce validator warnings.
	MinSaneMultiplier float64 `yaml:"min_sane_multiplier" validate:"gt=0"`
	MaxSaneMultiplier float64 `yaml:"max_sane_multiplier" validate:"gtfield=MinSaneMultiplier"`

	// Result cache bound; zero disables eviction.
	CacheCapacity int `yaml:"cache_capacity" validate:"gte=0"`
}

// DefaultTunables returns the shipped business defaults.
func DefaultTunables() Tunables {
	return Tunables{
		HourlyLaborRate:           60,
		DefaultAreaSqFt:           5000,
		BaseHoursPerThousandSqFt:  1.5,
		SeverityLaborFactor:       1.25,
		ConfidenceHighThreshold:   80,
		ConfidenceMediumThreshold: 50,
		MinSaneMultiplier:         0.8,
		MaxSaneMultiplier:         3.0,
		CacheCapacity:             128,
	}
}
