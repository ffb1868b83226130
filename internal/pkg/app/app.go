package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	router "streamwatch/internal/app/adapters/http"
	"streamwatch/internal/app/adapters/metrics"
	"streamwatch/internal/app/adapters/platform/glimesh"
	"streamwatch/internal/app/adapters/platform/twitch"
	"streamwatch/internal/app/adapters/roster"
	"streamwatch/internal/app/domain/stats"
	"streamwatch/internal/app/infrastructure/config"
	"streamwatch/internal/app/ports"
	"streamwatch/pkg/logger"
)

const configPath = "config.json"

func New() error {
	_ = godotenv.Load()

	log := logger.New()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	client := &http.Client{Timeout: 15 * time.Second}

	platforms := BuildPlatforms(log, client, cfg)
	rosterProvider := roster.New(cfg.Roster)
	statsService := stats.New()

	if cfg.App.RefreshSeconds > 0 {
		go refreshLoop(log, rosterProvider, platforms, time.Duration(cfg.App.RefreshSeconds)*time.Second)
	}

	r := router.NewRouter(log, manager, platforms, rosterProvider, statsService)
	return r.Run()
}

// BuildPlatforms constructs one service per configured platform. Each
// service owns its own token slot and result cache.
func BuildPlatforms(log logger.Logger, client *http.Client, cfg *config.Config) map[string]ports.PlatformPort {
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	platforms := make(map[string]ports.PlatformPort, 2)

	if cfg.Platforms.Twitch != nil {
		platforms["twitch"] = twitch.New(log, client, cfg.Platforms.Twitch, cfg.Fetch, cacheTTL)
	}
	if cfg.Platforms.Glimesh != nil {
		platforms["glimesh"] = glimesh.New(log, client, cfg.Platforms.Glimesh, cfg.Fetch, cacheTTL)
	}

	return platforms
}

// refreshLoop re-fetches the roster on a fixed interval and keeps the
// live gauges current.
func refreshLoop(log logger.Logger, rosterProvider ports.RosterPort, platforms map[string]ports.PlatformPort, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		logins, err := rosterProvider.Logins()
		if err != nil {
			log.Error("Roster refresh failed", err)
			continue
		}

		for name, p := range platforms {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			records, err := p.FetchMany(ctx, logins)
			cancel()
			if err != nil {
				log.Error("Roster refresh failed", err, "platform", name)
				continue
			}

			liveCount := 0
			var viewers int64
			for _, rec := range records {
				if rec.IsLive && rec.Stream != nil {
					liveCount++
					viewers += int64(rec.Stream.ViewerCount)
				}
			}

			metrics.LiveStreamers.WithLabelValues(name).Set(float64(liveCount))
			metrics.LiveViewers.WithLabelValues(name).Set(float64(viewers))
			log.Debug("Roster refreshed", "platform", name, "records", len(records), "live", liveCount)
		}
	}
}
