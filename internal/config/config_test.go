package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://chat.openai.com", cfg.AllowedOrigin)
	assert.Equal(t, "http://localhost:8080", cfg.PublicURL)
	assert.Equal(t, "http://localhost:8080/legal", cfg.LegalInfoURL)
	assert.Equal(t, "support@example.com", cfg.ContactEmail)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_PublicURLTrailingSlash(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(keyPublicURL, "https://todo.example.com/")

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://todo.example.com", cfg.PublicURL)
	assert.Equal(t, "https://todo.example.com/legal", cfg.LegalInfoURL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		key   string
		value any
	}{
		{"port not numeric", keyPort, "http"},
		{"port zero", keyPort, "0"},
		{"port too large", keyPort, "70000"},
		{"public url relative", keyPublicURL, "/plugin"},
		{"public url ftp", keyPublicURL, "ftp://example.com"},
		{"shutdown timeout zero", keyShutdownTimeout, "0s"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := viper.New()
			v.Set(tc.key, tc.value)

			_, err := load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGIN", "http://localhost:3000")
	t.Setenv("PUBLIC_URL", "https://todo.example.com")
	t.Setenv("CONTACT_EMAIL", "dev@example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
	assert.Equal(t, "https://todo.example.com", cfg.PublicURL)
	assert.Equal(t, "dev@example.com", cfg.ContactEmail)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoplugin.yaml")
	content := "port: \"7070\"\nlegal_info_url: https://example.com/terms\nshutdown_timeout: 3s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(EnvConfigFile, path)
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "https://example.com/terms", cfg.LegalInfoURL)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
