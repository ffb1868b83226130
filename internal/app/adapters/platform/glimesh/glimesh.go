package glimesh

import (
	"net/http"
	"time"

	"streamwatch/internal/app/adapters/platform"
	"streamwatch/internal/app/adapters/platform/glimesh/api"
	"streamwatch/internal/app/adapters/platform/oauth"
	"streamwatch/internal/app/infrastructure/config"
	"streamwatch/internal/app/infrastructure/storage"
	"streamwatch/internal/app/ports"
	"streamwatch/pkg/logger"
)

// New wires the token source, per-identity fetcher and result cache
// into one platform service.
func New(log logger.Logger, client *http.Client, cfg *config.Platform, fetch config.Fetch, cacheTTL time.Duration) *platform.Service {
	tokens := oauth.NewTokenSource(log, client, "glimesh", cfg.ClientID, cfg.ClientSecret, cfg.TokenURL)
	fetcher := api.NewClient(
		log,
		client,
		tokens,
		cfg.BaseURL,
		cfg.ClientID,
		cfg.BatchSize,
		fetch.MaxRetries,
		time.Duration(fetch.BatchDelaySeconds)*time.Second,
	)
	cache := storage.NewCache[[]ports.StreamerRecord](16, cacheTTL)

	return platform.NewService("glimesh", log, fetcher, cache)
}
