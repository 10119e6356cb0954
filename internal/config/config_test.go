package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_url: https://tasks.example.com/api\noutput: json\ntimeout_seconds: 5\n",
	), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://tasks.example.com/api", cfg.APIURL)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com/api\n"), 0o600))
	t.Setenv(EnvAPIURL, "https://env.example.com/api")
	t.Setenv(EnvOutput, "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api", cfg.APIURL)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoad_ExpandsEnvInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("TASKS_HOST", "tasks.internal")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://${TASKS_HOST}/api\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.internal/api", cfg.APIURL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"relative api url", "api_url: not-a-url\n"},
		{"bad output", "output: xml\n"},
		{"negative timeout", "timeout_seconds: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.APIURL = "https://tasks.example.com/api"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com/api", loaded.APIURL)
}

func TestDefaultPath_HonorsEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.yaml")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}
