package config

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// assessmentDoc is the YAML shape of an assessment snapshot. It mirrors the
// domain type but carries validation tags so structural problems are caught
// before conversion.
type assessmentDoc struct {
	OverallCondition string `yaml:"overall_condition,omitempty" validate:"omitempty,oneof=excellent good fair poor"`
	LawnCondition    string `yaml:"lawn_condition,omitempty" validate:"omitempty,oneof=excellent good fair patchy poor dead"`
	SoilCondition    string `yaml:"soil_condition,omitempty" validate:"omitempty,oneof=good fair compacted contaminated"`
	PropertyAccess   string `yaml:"property_access,omitempty" validate:"omitempty,oneof=easy moderate difficult"`
	DrainageQuality  string `yaml:"drainage_quality,omitempty" validate:"omitempty,oneof=good fair poor"`

	WeedCoveragePercent    float64 `yaml:"weed_coverage_percent,omitempty" validate:"gte=0,lte=100"`
	LawnAreaMeasuredSqFt   float64 `yaml:"lawn_area_measured_sqft,omitempty" validate:"gte=0"`
	LawnAreaEstimatedSqFt  float64 `yaml:"lawn_area_estimated_sqft,omitempty" validate:"gte=0"`
	ComplexityScore        int     `yaml:"complexity_score,omitempty" validate:"omitempty,min=1,max=10"`
	VehicleAccessWidthFeet float64 `yaml:"vehicle_access_width_feet,omitempty" validate:"gte=0"`
	SlopeDegrees           float64 `yaml:"slope_degrees,omitempty" validate:"gte=0,lte=90"`

	DumpTruckAccess    *bool `yaml:"dump_truck_access,omitempty"`
	UtilityLinesMarked *bool `yaml:"utility_lines_marked,omitempty"`
	WaterAccess        *bool `yaml:"water_access,omitempty"`

	MeasurementVerified bool `yaml:"measurement_verified,omitempty"`

	AssessedAt time.Time `yaml:"assessed_at,omitempty"`
	Notes      string    `yaml:"notes,omitempty"`
}

func (d assessmentDoc) toDomain() *quote.Assessment {
	return &quote.Assessment{
		OverallCondition:       d.OverallCondition,
		LawnCondition:          quote.LawnCondition(d.LawnCondition),
		SoilCondition:          quote.SoilCondition(d.SoilCondition),
		PropertyAccess:         quote.AccessRating(d.PropertyAccess),
		DrainageQuality:        quote.DrainageQuality(d.DrainageQuality),
		WeedCoveragePercent:    d.WeedCoveragePercent,
		LawnAreaMeasuredSqFt:   d.LawnAreaMeasuredSqFt,
		LawnAreaEstimatedSqFt:  d.LawnAreaEstimatedSqFt,
		ComplexityScore:        d.ComplexityScore,
		VehicleAccessWidthFeet: d.VehicleAccessWidthFeet,
		SlopeDegrees:           d.SlopeDegrees,
		DumpTruckAccess:        d.DumpTruckAccess,
		UtilityLinesMarked:     d.UtilityLinesMarked,
		WaterAccess:            d.WaterAccess,
		MeasurementVerified:    d.MeasurementVerified,
		AssessedAt:             d.AssessedAt,
		Notes:                  d.Notes,
	}
}

// catalogDoc is the YAML shape of the service catalog.
type catalogDoc struct {
	Items []catalogItemDoc `yaml:"items" validate:"required,min=1,dive"`
}

type catalogItemDoc struct {
	ID       string  `yaml:"id,omitempty" validate:"item_id"`
	Name     string  `yaml:"name" validate:"required,min=1,max=200"`
	Unit     string  `yaml:"unit" validate:"required,min=1,max=40"`
	UnitCost float64 `yaml:"unit_cost" validate:"gte=0"`
}

func (d catalogDoc) toDomain() quote.Catalog {
	catalog := make(quote.Catalog, 0, len(d.Items))
	for _, item := range d.Items {
		id := uuid.New()
		if item.ID != "" {
			// Validation already guaranteed the format.
			id = uuid.MustParse(item.ID)
		}
		catalog = append(catalog, quote.CatalogItem{
			ID:       id,
			Name:     item.Name,
			Unit:     item.Unit,
			UnitCost: decimal.NewFromFloat(item.UnitCost),
		})
	}
	return catalog
}
