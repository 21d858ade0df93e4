package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFilesMergesJSONThenDotEnv(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"app_port":"9000","cache_ttl_seconds":30,"db_driver":"postgres"}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nAPP_PORT=\"9100\"\nJWT_ISSUER=tests\n"), 0o644))

	require.NoError(t, loadFromFiles(jsonPath, envPath))
	t.Cleanup(func() { _ = loadFromFiles(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env")) })

	assert.Equal(t, "9100", get("APP_PORT", ""))
	assert.Equal(t, "30", get("CACHE_TTL_SECONDS", ""))
	assert.Equal(t, "tests", get("JWT_ISSUER", ""))
	assert.Equal(t, "postgres", get("DB_DRIVER", ""))
}

func TestLoadFromFilesMissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadFromFiles(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.env")))

	assert.Equal(t, defaultAppPort, get("APP_PORT", ""))
	assert.Equal(t, defaultJWTIssuer, get("JWT_ISSUER", ""))
}

func TestLoadFromFilesRejectsBrokenJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{not json`), 0o644))

	assert.Error(t, loadFromFiles(jsonPath, filepath.Join(dir, ".env")))
}

func TestSetOverridesAndReset(t *testing.T) {
	t.Cleanup(Reset)

	Set("rate_limit_per_minute", "7")
	assert.Equal(t, 7, RateLimitPerMinute())

	Set("RATE_LIMIT_PER_MINUTE", "not-a-number")
	assert.Equal(t, 200, RateLimitPerMinute())

	Reset()
	assert.Equal(t, 200, RateLimitPerMinute())
}

func TestEnvironmentBeatsFiles(t *testing.T) {
	t.Setenv("JWT_AUDIENCE", "from-env")
	assert.Equal(t, "from-env", JWTAudience())
}

func TestCORSAllowedOriginsSplits(t *testing.T) {
	t.Cleanup(Reset)
	Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSAllowedOrigins())
}
