package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 400*time.Millisecond, cfg.UI.ResultDelay())
	assert.Equal(t, 200*time.Millisecond, cfg.UI.ErrorDelay())
	assert.Equal(t, 3, cfg.UI.SuggestionLimit)
	assert.Equal(t, 4, cfg.UI.PageWindow)
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = 1

[api]
base_url = "http://localhost:9999/api"

[ui]
result_delay_ms = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.UI.ResultDelayMS)
	// untouched keys keep their defaults
	assert.Equal(t, 200, cfg.UI.ErrorDelayMS)
	assert.Equal(t, 15000, cfg.API.TimeoutMS)
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0644))

	t.Setenv("RICKDEX_LOG_LEVEL", "debug")
	t.Setenv("RICKDEX_SUGGESTION_LIMIT", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.UI.SuggestionLimit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\npage_window = 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_window")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url="), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:8080/api"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.BaseURL, loaded.API.BaseURL)
}

func TestLoadReadsDotEnv(t *testing.T) {
	const name = "RICKDEX_PAGE_WINDOW"
	if _, set := os.LookupEnv(name); set {
		t.Skipf("%s is set in the environment", name)
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(name+"=6\n"), 0644))
	t.Chdir(dir)
	// godotenv exports into the process environment
	t.Cleanup(func() { _ = os.Unsetenv(name) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.UI.PageWindow)
}

func TestLoadRejectsBrokenDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RICKDEX_LOG_LEVEL='debug\n"), 0644))
	t.Chdir(dir)

	_, err := Load("")
	assert.Error(t, err)
}
