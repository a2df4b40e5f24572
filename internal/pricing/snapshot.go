package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/cache"
	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// assessmentKey lists exactly the assessment fields the calculation reads.
// Narrative fields (notes, timestamps) are deliberately absent so editing them
// does not bust the cache.
type assessmentKey struct {
	LawnCondition    quote.LawnCondition   `json:"lawn"`
	SoilCondition    quote.SoilCondition   `json:"soil"`
	PropertyAccess   quote.AccessRating    `json:"access"`
	DrainageQuality  quote.DrainageQuality `json:"drainage"`
	WeedCoverage     float64               `json:"weeds"`
	AreaMeasured     float64               `json:"area_measured"`
	AreaEstimated    float64               `json:"area_estimated"`
	Complexity       int                   `json:"complexity"`
	VehicleWidthFeet float64               `json:"vehicle_width"`
	SlopeDegrees     float64               `json:"slope"`
	DumpTruck        *bool                 `json:"dump_truck"`
	UtilitiesMarked  *bool                 `json:"utilities_marked"`
	WaterAccess      *bool                 `json:"water_access"`
	Verified         bool                  `json:"verified"`
}

type catalogKey struct {
	ID       string `json:"id"`
	UnitCost string `json:"unit_cost"`
}

type optionsKey struct {
	SkipEquipment bool `json:"skip_equipment"`
	SkipMaterial  bool `json:"skip_material"`
	SkipLabor     bool `json:"skip_labor"`
}

type snapshot struct {
	Assessment assessmentKey `json:"assessment"`
	Catalog    []catalogKey  `json:"catalog"`
	BasePrice  string        `json:"base_price"`
	Options    optionsKey    `json:"options"`
}

// fingerprint builds the cache key for one calculation. UseCache itself is
// excluded: it selects the code path, not the result.
func fingerprint(a *quote.Assessment, catalog quote.Catalog, basePrice decimal.Decimal, opts Options) (string, error) {
	items := make([]catalogKey, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, catalogKey{ID: item.ID.String(), UnitCost: item.UnitCost.String()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return cache.Fingerprint(snapshot{
		Assessment: assessmentKey{
			LawnCondition:    a.LawnCondition,
			SoilCondition:    a.SoilCondition,
			PropertyAccess:   a.PropertyAccess,
			DrainageQuality:  a.DrainageQuality,
			WeedCoverage:     a.WeedCoveragePercent,
			AreaMeasured:     a.LawnAreaMeasuredSqFt,
			AreaEstimated:    a.LawnAreaEstimatedSqFt,
			Complexity:       a.ComplexityScore,
			VehicleWidthFeet: a.VehicleAccessWidthFeet,
			SlopeDegrees:     a.SlopeDegrees,
			DumpTruck:        a.DumpTruckAccess,
			UtilitiesMarked:  a.UtilityLinesMarked,
			WaterAccess:      a.WaterAccess,
			Verified:         a.MeasurementVerified,
		},
		Catalog:   items,
		BasePrice: basePrice.String(),
		Options: optionsKey{
			SkipEquipment: opts.SkipEquipmentCalculation,
			SkipMaterial:  opts.SkipMaterialCalculation,
			SkipLabor:     opts.SkipLaborBreakdown,
		},
	})
}
