package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) CacheClearHandler(c *gin.Context) {
	for _, p := range h.platforms {
		p.ClearCache()
	}

	h.log.Info("Result caches cleared")
	c.JSON(http.StatusOK, gin.H{"cleared": len(h.platforms)})
}
