package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCommandShowsDifferences(t *testing.T) {
	assessmentPath, catalogPath := writeInputs(t)

	healthyPath := filepath.Join(t.TempDir(), "healthy.yaml")
	require.NoError(t, os.WriteFile(healthyPath, []byte(`
lawn_condition: healthy
soil_condition: good
lawn_area_measured_sqft: 1000
measurement_verified: true
`), 0o644))

	output, err := executeCommand(t,
		"compare", "-a", assessmentPath, "-c", catalogPath, "--base-price", "1000",
		"--against", healthyPath)
	require.NoError(t, err)

	assert.Contains(t, output, "-multiplier x1.400")
	assert.Contains(t, output, "+multiplier x1.000")
	assert.Contains(t, output, "-final price 1445.99")
	assert.Contains(t, output, "+final price 1000.00")
}

func TestCompareCommandIdenticalAssessments(t *testing.T) {
	assessmentPath, catalogPath := writeInputs(t)

	output, err := executeCommand(t,
		"compare", "-a", assessmentPath, "-c", catalogPath, "--base-price", "1000",
		"--against", assessmentPath)
	require.NoError(t, err)
	assert.Contains(t, output, "quotes are identical")
}

func TestCompareCommandRequiresAgainst(t *testing.T) {
	assessmentPath, catalogPath := writeInputs(t)

	_, err := executeCommand(t,
		"compare", "-a", assessmentPath, "-c", catalogPath, "--base-price", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "against")
}
