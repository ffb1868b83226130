package config

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel:       "info",
			GinMode:        "release",
			ListenAddr:     ":8080",
			AuthToken:      "changeme",
			RefreshSeconds: 0,
		},
		Roster: Roster{
			Source: "inline",
			Logins: []string{},
		},
		Platforms: Platforms{
			Twitch: &Platform{
				BaseURL:   "https://api.twitch.tv/helix",
				TokenURL:  "https://id.twitch.tv/oauth2/token",
				BatchSize: 100,
			},
		},
		Fetch: Fetch{
			BatchDelaySeconds: 2,
			MaxRetries:        3,
		},
		Cache: Cache{
			TTLSeconds: 60,
		},
	}
}
