package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"streamwatch/internal/app/adapters/platform"
	"streamwatch/internal/app/infrastructure/config"
	"streamwatch/internal/app/ports"
	"streamwatch/pkg/logger"
)

type Handlers struct {
	log     logger.Logger
	manager *config.Manager

	platforms map[string]ports.PlatformPort
	roster    ports.RosterPort
	stats     ports.StatsPort

	startedAt time.Time
}

func New(log logger.Logger, manager *config.Manager, platforms map[string]ports.PlatformPort, roster ports.RosterPort, stats ports.StatsPort) *Handlers {
	return &Handlers{
		log:       log,
		manager:   manager,
		platforms: platforms,
		roster:    roster,
		stats:     stats,
		startedAt: time.Now(),
	}
}

func (h *Handlers) platform(c *gin.Context) (ports.PlatformPort, bool) {
	name := c.DefaultQuery("platform", "twitch")

	p, ok := h.platforms[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "unknown platform: " + name})
		return nil, false
	}
	return p, true
}

func (h *Handlers) writeError(c *gin.Context, err error) {
	h.log.Error("Request failed", err, "path", c.FullPath())

	status := http.StatusInternalServerError
	if errors.Is(err, platform.ErrAuth) {
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"message": err.Error()})
}
