package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "en-US", cfg.Tip.DefaultLocale)
	require.Empty(t, cfg.Tip.DefaultCurrency)
	require.False(t, cfg.OTel.Enabled)
	require.Equal(t, "tiptime", cfg.OTel.ServiceName)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TIP_DEFAULT_LOCALE", "de-DE")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "de-DE", cfg.Tip.DefaultLocale)
	require.True(t, cfg.OTel.Enabled)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yml")
	yml := "environment: production\n" +
		"http:\n  addr: \":7070\"\n" +
		"tip:\n  defaultLocale: fr-FR\n  defaultCurrency: CHF\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, "fr-FR", cfg.Tip.DefaultLocale)
	require.Equal(t, "CHF", cfg.Tip.DefaultCurrency)
}

func TestLoadRejectsBadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("locale", func(t *testing.T) {
		t.Setenv("TIP_DEFAULT_LOCALE", "not a locale!")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("currency", func(t *testing.T) {
		t.Setenv("TIP_DEFAULT_CURRENCY", "ZZZ")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("metrics path", func(t *testing.T) {
		t.Setenv("HTTP_METRICS_PATH", "metrics")
		_, err := Load("")
		require.Error(t, err)
	})
}
