package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"event_id": "ev-42",
		"session_count": 4,
		"company_weight": 0.7,
		"candidate_weight": 0.3,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ev-42", cfg.EventID)
	assert.Equal(t, 4, cfg.SessionCount)
	assert.Equal(t, 0.7, cfg.CompanyWeight)
	assert.Equal(t, 0.3, cfg.CandidateWeight)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfig(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{SessionCount: -1}).Validate())
	assert.Error(t, (&Config{CompanyWeight: 1.5}).Validate())
	assert.Error(t, (&Config{CandidateWeight: -0.1}).Validate())
	assert.Error(t, (&Config{PinsPath: "/no/such/file.json"}).Validate())
	assert.NoError(t, (&Config{SessionCount: 3, CompanyWeight: 0.7, CandidateWeight: 0.3}).Validate())
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "jobtv-matching", cfg.Issuer)
	assert.Equal(t, 12, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword("s3cret-pass", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestNewPasswordConfig_BadCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "abc")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}
