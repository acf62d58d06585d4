package config_test

import (
	"ontrack/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8000", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, int64(65536), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, config.ReferenceSourceSheet, cfg.Reference.Source)
	require.Equal(t, "data/reference.yaml", cfg.Reference.Path)
	require.Empty(t, cfg.HTTP.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REFERENCE_SOURCE", "postgres")

	cfg, err := config.Load(writeConfig(t, "http:\n  addr: \":9000\"\n"))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, config.ReferenceSourcePostgres, cfg.Reference.Source)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load(writeConfig(t, "reference:\n  source: excel\n"))
	require.ErrorContains(t, err, `unknown reference source "excel"`)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, "could not read config")
}
