package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"streamwatch/internal/app/adapters/console"
	"streamwatch/internal/app/adapters/roster"
	"streamwatch/internal/app/domain/stats"
	"streamwatch/internal/app/infrastructure/config"
	"streamwatch/internal/pkg/app"
	"streamwatch/pkg/logger"
)

// One-shot console report: fetch the roster once, print the table and
// the aggregate summary, exit.
func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	platformName := flag.String("platform", "twitch", "platform to report on")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall fetch timeout")
	flag.Parse()

	_ = godotenv.Load()
	log := logger.New()

	manager, err := config.New(*configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)

	client := &http.Client{Timeout: 15 * time.Second}
	platforms := app.BuildPlatforms(log, client, cfg)

	p, ok := platforms[*platformName]
	if !ok {
		log.Fatal("Unknown platform", fmt.Errorf("no %q in config", *platformName))
	}

	logins, err := roster.New(cfg.Roster).Logins()
	if err != nil {
		log.Fatal("Error loading roster", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	records, err := p.FetchMany(ctx, logins)
	if err != nil {
		log.Fatal("Fetch failed", err)
	}

	console.Render(os.Stdout, p.Name(), records, stats.New().Summarize(records))
}
