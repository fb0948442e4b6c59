package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeights_BothProvided(t *testing.T) {
	company, candidate, err := resolveWeights(true, true, 0.6, 0.4)
	require.NoError(t, err)
	require.NotNil(t, company)
	require.NotNil(t, candidate)
	assert.Equal(t, 0.6, *company)
	assert.Equal(t, 0.4, *candidate)
}

func TestResolveWeights_NeitherProvidedUsesDefault(t *testing.T) {
	company, candidate, err := resolveWeights(false, false, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, company)
	assert.Nil(t, candidate)
}

func TestResolveWeights_HalfSpecifiedRejected(t *testing.T) {
	_, _, err := resolveWeights(true, false, 0.7, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be provided together")

	_, _, err = resolveWeights(false, true, 0, 0.3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be provided together")
}

func TestResolveWeights_ExplicitZeroSideAllowed(t *testing.T) {
	// --company-weight 1.0 --candidate-weight 0 is a legal pair; zero only
	// means "unset" when the flag was never given.
	company, candidate, err := resolveWeights(true, true, 1.0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, *company)
	assert.Equal(t, 0.0, *candidate)
}

func TestLoadPins_EmptyPath(t *testing.T) {
	pins, err := loadPins("")
	require.NoError(t, err)
	assert.Nil(t, pins)
}

func TestLoadPins_MissingFile(t *testing.T) {
	_, err := loadPins(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadPins_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.json")
	payload := `[{"company_id":"c1","candidate_id":"s1","session_number":2}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	pins, err := loadPins(path)
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, "c1", pins[0].CompanyID)
	assert.Equal(t, "s1", pins[0].CandidateID)
	assert.Equal(t, 2, pins[0].SessionNumber)
}

func TestLoadPins_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.json")
	payload := `[{"company_id":"c1","session_number":0}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := loadPins(path)
	assert.Error(t, err)
}
