package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorsearch/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://colors.example.com"
	cfg.UISettings.AltScreen = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debug = true\n\n[api]\nbase_url = \"https://api.example.com\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "/api/colors/search", cfg.API.SearchPath)
	assert.Equal(t, "firstName", cfg.API.QueryParam)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout())
}

func TestLoadFromPathErrors(t *testing.T) {
	dir := t.TempDir()
	svc := NewConfigService("")

	_, err := svc.LoadFromPath(filepath.Join(dir, "nope.toml"))
	assert.ErrorContains(t, err, "config file not found")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[api\nbase_url ="), 0644))
	_, err = svc.LoadFromPath(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfigEventsArePublished(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	loaded := make(chan eventbus.ConfigLoadedEvent, 1)
	saved := make(chan eventbus.ConfigSavedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent)
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceWithBus(path, bus)
	require.NoError(t, svc.Save(DefaultConfig()))
	_, err := svc.Load()
	require.NoError(t, err)

	select {
	case e := <-saved:
		assert.Equal(t, path, e.Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigSaved not published")
	}
	select {
	case e := <-loaded:
		assert.Equal(t, "http://localhost:3000", e.BaseURL)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLegacyAPIURL: "http://legacy:8080",
		EnvDebug:        "yes",
	}
	cfg := DefaultConfig()
	ApplyEnv(cfg, func(k string) string { return env[k] })
	assert.Equal(t, "http://legacy:8080", cfg.API.BaseURL)
	assert.True(t, cfg.Debug)

	env[EnvAPIURL] = " https://preferred.example.com "
	env[EnvDebug] = "0"
	ApplyEnv(cfg, func(k string) string { return env[k] })
	assert.Equal(t, "https://preferred.example.com", cfg.API.BaseURL)
	assert.False(t, cfg.Debug)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(dir), "missing .env is not an error")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COLORSEARCH_TEST_DOTENV=from-file\n"), 0644))
	t.Setenv("COLORSEARCH_TEST_DOTENV", "")
	os.Unsetenv("COLORSEARCH_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-file", os.Getenv("COLORSEARCH_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.API.BaseURL = "ftp://colors"
	assert.ErrorContains(t, cfg.Validate(), "scheme must be http or https")

	cfg.API.BaseURL = "localhost:3000/api"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.API.TimeoutSeconds = 0
	assert.ErrorContains(t, cfg.Validate(), "timeout_seconds")

	cfg = DefaultConfig()
	cfg.API.QueryParam = ""
	assert.ErrorContains(t, cfg.Validate(), "query_param")
}
