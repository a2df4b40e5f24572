package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeaudry/quotient/internal/domain/quote"
	quotienterrors "github.com/mbeaudry/quotient/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseAssessmentValidDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "assessment.yaml", `
lawn_condition: dead
soil_condition: good
lawn_area_measured_sqft: 1000
complexity_score: 4
dump_truck_access: false
measurement_verified: true
`)

	assessment, err := ParseAssessment(path)
	require.NoError(t, err)
	assert.Equal(t, quote.LawnDead, assessment.LawnCondition)
	assert.Equal(t, quote.SoilGood, assessment.SoilCondition)
	assert.Equal(t, 1000.0, assessment.LawnAreaMeasuredSqFt)
	assert.True(t, assessment.MeasurementVerified)

	value, recorded := quote.FlagRecorded(assessment.DumpTruckAccess)
	assert.True(t, recorded)
	assert.False(t, value)
}

func TestParseAssessmentUnknownCondition(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "assessment.yaml", "lawn_condition: scorched\n")

	_, err := ParseAssessment(path)
	require.Error(t, err)

	var validationErr *quotienterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "assessment.")
}

func TestParseAssessmentMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "assessment.yaml", "lawn_condition: [unterminated\n")

	_, err := ParseAssessment(path)
	var parseErr *quotienterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestParseCatalogGeneratesMissingIDs(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", `
items:
  - name: Premium Grass Seed
    unit: bag
    unit_cost: 45.99
  - id: 2f6b62b6-8df6-4cf4-8d9c-8f6f3f3d9f10
    name: Topsoil Delivery
    unit: cubic yard
    unit_cost: 38
`)

	catalog, err := ParseCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.NotEqual(t, catalog[0].ID, catalog[1].ID)
	assert.Equal(t, "2f6b62b6-8df6-4cf4-8d9c-8f6f3f3d9f10", catalog[1].ID.String())
	assert.Equal(t, "45.99", catalog[0].UnitCost.StringFixed(2))
}

func TestParseCatalogRejectsBadID(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", `
items:
  - id: not-a-uuid
    name: Weed Control Treatment
    unit: application
    unit_cost: 80
`)

	_, err := ParseCatalog(path)
	var validationErr *quotienterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseCatalogRequiresItems(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", "items: []\n")

	_, err := ParseCatalog(path)
	require.Error(t, err)
}

func TestParseTunablesDefaultsWhenPathEmpty(t *testing.T) {
	t.Parallel()

	tunables, err := ParseTunables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTunables(), tunables)
}

func TestParseTunablesOverridesOnTopOfDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tunables.yaml", `
hourly_labor_rate: 72.5
cache_capacity: 16
`)

	tunables, err := ParseTunables(path)
	require.NoError(t, err)
	assert.Equal(t, 72.5, tunables.HourlyLaborRate)
	assert.Equal(t, 16, tunables.CacheCapacity)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultTunables().ConfidenceHighThreshold, tunables.ConfidenceHighThreshold)
}

func TestParseTunablesRejectsInvertedThresholds(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tunables.yaml", `
confidence_high_threshold: 40
confidence_medium_threshold: 60
`)

	_, err := ParseTunables(path)
	var validationErr *quotienterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
