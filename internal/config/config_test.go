package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarer/trip-planner/internal/config"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "CORS_ORIGINS", "CATALOG_PATH", "SHARE_BASE_URL", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

// TestLoad_defaults verifies that every variable falls back to its default
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Empty(t, cfg.CatalogPath)
	require.Empty(t, cfg.ShareBaseURL)
	require.Equal(t, config.DefaultMaxBodyBytes, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("CATALOG_PATH", "/etc/planner/catalog.yaml")
	t.Setenv("SHARE_BASE_URL", "https://trips.example.com/")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "/etc/planner/catalog.yaml", cfg.CatalogPath)
	require.Equal(t, "https://trips.example.com", cfg.ShareBaseURL, "trailing slash is trimmed")
	require.EqualValues(t, 2048, cfg.MaxBodyBytes)
}

// TestLoad_invalidMaxBodyBytes verifies that a non-positive or non-numeric
// MAX_BODY_BYTES is rejected and the error names the variable.
func TestLoad_invalidMaxBodyBytes(t *testing.T) {
	for _, v := range []string{"lots", "0", "-5"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv("MAX_BODY_BYTES", v)

			_, err := config.Load()

			require.Error(t, err)
			require.ErrorContains(t, err, "MAX_BODY_BYTES")
		})
	}
}

// TestLoad_dotEnvFile verifies that a .env file fills in unset variables but
// never overrides ones already present in the environment.
func TestLoad_dotEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("SHARE_BASE_URL"))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SHARE_BASE_URL=https://from-dotenv.example.com\nPORT=7000\n"), 0o600))
	chdir(t, dir)
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "https://from-dotenv.example.com", cfg.ShareBaseURL)
	require.Equal(t, "9999", cfg.Port)
}
