package config

import (
	"errors"
	"fmt"
)

var placeholderValues = map[string]bool{
	"":                   true,
	"changeme":           true,
	"your_client_id":     true,
	"your_client_secret": true,
	"xxx":                true,
}

func (m *Manager) validate(cfg *Config) error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}

	if cfg.App.ListenAddr == "" {
		cfg.App.ListenAddr = ":8080"
	}
	if cfg.App.RefreshSeconds < 0 {
		return errors.New("app.refresh_seconds must not be negative")
	}

	switch cfg.Roster.Source {
	case "", "inline":
		cfg.Roster.Source = "inline"
	case "file":
		if cfg.Roster.Path == "" {
			return errors.New("roster.path is required when roster.source is 'file'")
		}
	case "env":
	default:
		return fmt.Errorf("roster.source must be one of inline, file, env; got %s", cfg.Roster.Source)
	}

	if cfg.Platforms.Twitch == nil && cfg.Platforms.Glimesh == nil {
		return errors.New("at least one platform must be configured")
	}

	if err := validatePlatform("twitch", cfg.Platforms.Twitch, 100); err != nil {
		return err
	}
	if err := validatePlatform("glimesh", cfg.Platforms.Glimesh, 3); err != nil {
		return err
	}

	if cfg.Fetch.BatchDelaySeconds <= 0 {
		cfg.Fetch.BatchDelaySeconds = 2
	}
	if cfg.Fetch.MaxRetries <= 0 {
		cfg.Fetch.MaxRetries = 3
	}
	if cfg.Cache.TTLSeconds <= 0 {
		cfg.Cache.TTLSeconds = 60
	}

	return nil
}

func validatePlatform(name string, p *Platform, defaultBatchSize int) error {
	if p == nil {
		return nil
	}

	if placeholderValues[p.ClientID] {
		return fmt.Errorf("platforms.%s.client_id is missing or a placeholder", name)
	}
	if placeholderValues[p.ClientSecret] {
		return fmt.Errorf("platforms.%s.client_secret is missing or a placeholder", name)
	}
	if p.BaseURL == "" {
		return fmt.Errorf("platforms.%s.base_url is required", name)
	}
	if p.TokenURL == "" {
		return fmt.Errorf("platforms.%s.token_url is required", name)
	}
	if p.BatchSize <= 0 {
		p.BatchSize = defaultBatchSize
	}

	return nil
}
