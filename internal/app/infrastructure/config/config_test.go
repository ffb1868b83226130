package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, cfg *Config) string {
	t.Helper()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	return path
}

func validConfig() *Config {
	return &Config{
		App: App{LogLevel: "info"},
		Platforms: Platforms{
			Twitch: &Platform{
				ClientID:     "abc",
				ClientSecret: "def",
				BaseURL:      "https://api.example.com",
				TokenURL:     "https://id.example.com/token",
			},
		},
	}
}

func TestNew_LoadsAndAppliesDefaults(t *testing.T) {
	t.Parallel()

	m, err := New(writeConfig(t, validConfig()))
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, ":8080", cfg.App.ListenAddr)
	assert.Equal(t, "inline", cfg.Roster.Source)
	assert.Equal(t, 100, cfg.Platforms.Twitch.BatchSize)
	assert.Equal(t, 3, cfg.Fetch.MaxRetries)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestNew_RejectsPlaceholderCredentials(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Platforms.Twitch.ClientID = "your_client_id"

	_, err := New(writeConfig(t, cfg))
	assert.ErrorContains(t, err, "client_id")
}

func TestNew_RejectsMissingSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Platforms.Twitch.ClientSecret = ""

	_, err := New(writeConfig(t, cfg))
	assert.ErrorContains(t, err, "client_secret")
}

func TestNew_RequiresAtLeastOnePlatform(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Platforms.Twitch = nil

	_, err := New(writeConfig(t, cfg))
	assert.ErrorContains(t, err, "platform")
}

func TestNew_RejectsFileRosterWithoutPath(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Roster = Roster{Source: "file"}

	_, err := New(writeConfig(t, cfg))
	assert.ErrorContains(t, err, "roster.path")
}

func TestNew_EnvOverridesCredentials(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "env-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "env-secret")

	cfg := validConfig()
	cfg.Platforms.Twitch.ClientID = ""
	cfg.Platforms.Twitch.ClientSecret = ""

	m, err := New(writeConfig(t, cfg))
	require.NoError(t, err)

	assert.Equal(t, "env-id", m.Get().Platforms.Twitch.ClientID)
	assert.Equal(t, "env-secret", m.Get().Platforms.Twitch.ClientSecret)
}

func TestNew_WritesDefaultFileWithoutSecrets(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "env-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "env-secret")

	path := filepath.Join(t.TempDir(), "config.json")

	_, err := New(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "env-secret")
}

func TestUpdate_ValidatesAndPersists(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, validConfig())
	m, err := New(path)
	require.NoError(t, err)

	err = m.Update(func(cfg *Config) {
		cfg.Cache.TTLSeconds = 120
	})
	require.NoError(t, err)

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 120, reloaded.Get().Cache.TTLSeconds)
}
