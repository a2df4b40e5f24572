package suggest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/internal/rules"
)

func testCatalog() quote.Catalog {
	names := []struct {
		name string
		unit string
		cost string
	}{
		{"Premium Grass Seed Blend", "bag", "45.99"},
		{"Sod Installation", "pallet", "320"},
		{"Topsoil Delivery", "cubic yard", "38"},
		{"Core Aeration Service", "visit", "95"},
		{"Weed Control Treatment", "application", "80"},
		{"French Drain Installation", "linear foot", "24.50"},
		{"Water Tank Rental", "day", "110"},
	}

	catalog := make(quote.Catalog, 0, len(names))
	for _, n := range names {
		catalog = append(catalog, quote.CatalogItem{
			ID:       uuid.New(),
			Name:     n.name,
			Unit:     n.unit,
			UnitCost: decimal.RequireFromString(n.cost),
		})
	}
	return catalog
}

func TestItemsDeadLawnSuggestsSeed(t *testing.T) {
	t.Parallel()

	a := &quote.Assessment{
		LawnCondition:        quote.LawnDead,
		LawnAreaMeasuredSqFt: 1000,
		MeasurementVerified:  true,
	}

	items := Items(a, testCatalog(), rules.Evaluate(a))
	require.Len(t, items, 1)
	assert.Equal(t, "Premium Grass Seed Blend", items[0].Item.Name)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, quote.PriorityHigh, items[0].Priority)
	assert.Equal(t, quote.ConfidenceHigh, items[0].Confidence)
	assert.True(t, items[0].FromAssessment)
}

func TestItemsHeavyWeedsSuggestWeedControl(t *testing.T) {
	t.Parallel()

	a := &quote.Assessment{WeedCoveragePercent: 50, LawnAreaEstimatedSqFt: 3500}

	items := Items(a, testCatalog(), rules.Evaluate(a))
	require.Len(t, items, 1)
	assert.Equal(t, "Weed Control Treatment", items[0].Item.Name)
	assert.Equal(t, 4, items[0].Quantity, "ceil(3500/1000)")
	assert.Equal(t, quote.PriorityHigh, items[0].Priority)
	assert.Equal(t, quote.ConfidenceMedium, items[0].Confidence)
}

func TestItemsUnmatchedTriggerIsSkipped(t *testing.T) {
	t.Parallel()

	// Catalog with nothing matching seed/sod keywords.
	catalog := quote.Catalog{{ID: uuid.New(), Name: "Mulch Delivery", Unit: "cubic yard", UnitCost: decimal.NewFromInt(55)}}
	a := &quote.Assessment{LawnCondition: quote.LawnDead, LawnAreaMeasuredSqFt: 1000}

	items := Items(a, catalog, rules.Evaluate(a))
	assert.Empty(t, items)
}

func TestItemsMultiplierOnlyRulesSuggestNothing(t *testing.T) {
	t.Parallel()

	a := &quote.Assessment{VehicleAccessWidthFeet: 6, PropertyAccess: quote.AccessDifficult}

	items := Items(a, testCatalog(), rules.Evaluate(a))
	assert.Empty(t, items, "access rules carry no keywords")
}

func TestItemsOrderingFollowsEvaluationOrder(t *testing.T) {
	t.Parallel()

	a := &quote.Assessment{
		LawnCondition:       quote.LawnPatchy,
		SoilCondition:       quote.SoilCompacted,
		WeedCoveragePercent: 40,
		DrainageQuality:     quote.DrainagePoor,
		LawnAreaMeasuredSqFt: 2200,
	}

	items := Items(a, testCatalog(), rules.Evaluate(a))
	require.Len(t, items, 4)
	assert.Equal(t, "Premium Grass Seed Blend", items[0].Item.Name)
	assert.Equal(t, "Core Aeration Service", items[1].Item.Name)
	assert.Equal(t, "Weed Control Treatment", items[2].Item.Name)
	assert.Equal(t, "French Drain Installation", items[3].Item.Name)

	// Patchy lawn is not severe; heavy weeds are.
	assert.Equal(t, quote.PriorityMedium, items[0].Priority)
	assert.Equal(t, quote.PriorityHigh, items[2].Priority)

	for _, item := range items {
		assert.Equal(t, 3, item.Quantity, "ceil(2200/1000)")
	}
}

func TestItemsIncompleteAssessmentLowersConfidence(t *testing.T) {
	t.Parallel()

	a := &quote.Assessment{LawnCondition: quote.LawnPoor}

	items := Items(a, testCatalog(), rules.Evaluate(a))
	require.Len(t, items, 1)
	assert.Equal(t, quote.ConfidenceLow, items[0].Confidence)
	assert.Equal(t, 1, items[0].Quantity, "missing area never inflates quantity")
}

func TestItemsNilInputs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Items(nil, testCatalog(), nil))
	assert.Nil(t, Items(&quote.Assessment{}, nil, nil))
}
