package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) StreamersHandler(c *gin.Context) {
	p, ok := h.platform(c)
	if !ok {
		return
	}

	logins, err := h.roster.Logins()
	if err != nil {
		h.writeError(c, err)
		return
	}

	records, err := p.FetchMany(c.Request.Context(), logins)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"platform":  p.Name(),
		"count":     len(records),
		"streamers": records,
	})
}

func (h *Handlers) StatsHandler(c *gin.Context) {
	p, ok := h.platform(c)
	if !ok {
		return
	}

	logins, err := h.roster.Logins()
	if err != nil {
		h.writeError(c, err)
		return
	}

	records, err := p.FetchMany(c.Request.Context(), logins)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"platform": p.Name(),
		"stats":    h.stats.Summarize(records),
	})
}
