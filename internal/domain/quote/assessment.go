// Package quote defines the domain model shared by the pricing engine: the
// property assessment supplied as input, the service catalog, and the pricing
// result produced for quote creation and interactive previews.
package quote

import "time"

// LawnCondition classifies the observed state of the lawn.
type LawnCondition string

const (
	LawnExcellent LawnCondition = "excellent"
	LawnGood      LawnCondition = "good"
	LawnFair      LawnCondition = "fair"
	LawnPatchy    LawnCondition = "patchy"
	LawnPoor      LawnCondition = "poor"
	LawnDead      LawnCondition = "dead"
)

// SoilCondition classifies the observed state of the soil.
type SoilCondition string

const (
	SoilGood         SoilCondition = "good"
	SoilFair         SoilCondition = "fair"
	SoilCompacted    SoilCondition = "compacted"
	SoilContaminated SoilCondition = "contaminated"
)

// AccessRating classifies how difficult the property is to reach with crews
// and equipment.
type AccessRating string

const (
	AccessEasy      AccessRating = "easy"
	AccessModerate  AccessRating = "moderate"
	AccessDifficult AccessRating = "difficult"
)

// DrainageQuality classifies how well the property sheds water.
type DrainageQuality string

const (
	DrainageGood DrainageQuality = "good"
	DrainageFair DrainageQuality = "fair"
	DrainagePoor DrainageQuality = "poor"
)

// Assessment is a read-only snapshot of one property inspection. The engine
// never mutates it; absent values are the zero value (or nil for the boolean
// flags, where "unknown" must not be confused with "no").
type Assessment struct {
	OverallCondition string          `yaml:"overall_condition,omitempty" json:"overall_condition,omitempty"`
	LawnCondition    LawnCondition   `yaml:"lawn_condition,omitempty" json:"lawn_condition,omitempty"`
	SoilCondition    SoilCondition   `yaml:"soil_condition,omitempty" json:"soil_condition,omitempty"`
	PropertyAccess   AccessRating    `yaml:"property_access,omitempty" json:"property_access,omitempty"`
	DrainageQuality  DrainageQuality `yaml:"drainage_quality,omitempty" json:"drainage_quality,omitempty"`

	WeedCoveragePercent    float64 `yaml:"weed_coverage_percent,omitempty" json:"weed_coverage_percent,omitempty"`
	LawnAreaMeasuredSqFt   float64 `yaml:"lawn_area_measured_sqft,omitempty" json:"lawn_area_measured_sqft,omitempty"`
	LawnAreaEstimatedSqFt  float64 `yaml:"lawn_area_estimated_sqft,omitempty" json:"lawn_area_estimated_sqft,omitempty"`
	ComplexityScore        int     `yaml:"complexity_score,omitempty" json:"complexity_score,omitempty"`
	VehicleAccessWidthFeet float64 `yaml:"vehicle_access_width_feet,omitempty" json:"vehicle_access_width_feet,omitempty"`
	SlopeDegrees           float64 `yaml:"slope_degrees,omitempty" json:"slope_degrees,omitempty"`

	// Nil means the inspector did not record the flag.
	DumpTruckAccess    *bool `yaml:"dump_truck_access,omitempty" json:"dump_truck_access,omitempty"`
	UtilityLinesMarked *bool `yaml:"utility_lines_marked,omitempty" json:"utility_lines_marked,omitempty"`
	WaterAccess        *bool `yaml:"water_access,omitempty" json:"water_access,omitempty"`

	// MeasurementVerified is set when the recorded area was physically
	// measured on site rather than read off a plat or satellite imagery.
	MeasurementVerified bool `yaml:"measurement_verified,omitempty" json:"measurement_verified,omitempty"`

	AssessedAt time.Time `yaml:"assessed_at,omitempty" json:"assessed_at,omitempty"`
	Notes      string    `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// AreaSource records which assessment field supplied the working area.
type AreaSource string

const (
	AreaMeasured  AreaSource = "measured"
	AreaEstimated AreaSource = "estimated"
	AreaDefaulted AreaSource = "defaulted"
)

// Area returns the working lawn area in square feet, preferring the measured
// figure, then the estimate, then the supplied fallback.
func (a *Assessment) Area(fallbackSqFt float64) (float64, AreaSource) {
	if a.LawnAreaMeasuredSqFt > 0 {
		return a.LawnAreaMeasuredSqFt, AreaMeasured
	}
	if a.LawnAreaEstimatedSqFt > 0 {
		return a.LawnAreaEstimatedSqFt, AreaEstimated
	}
	return fallbackSqFt, AreaDefaulted
}

// FlagRecorded reports whether a tri-state access flag was recorded, and its
// value when it was.
func FlagRecorded(flag *bool) (value bool, recorded bool) {
	if flag == nil {
		return false, false
	}
	return *flag, true
}
