package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

func (h *Handlers) StatusHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var cpuPercent float64
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		cpuPercent = percent[0]
	}

	var memUsedPercent float64
	if vm, err := mem.VirtualMemory(); err == nil {
		memUsedPercent = vm.UsedPercent
	}

	c.JSON(http.StatusOK, gin.H{
		"uptime":           time.Since(h.startedAt).Truncate(time.Second).String(),
		"cpu_percent":      cpuPercent,
		"mem_used_percent": memUsedPercent,
		"heap_sys_mb":      m.Sys / 1024 / 1024,
		"goroutines":       runtime.NumGoroutine(),
		"log_level":        h.log.GetLogLevel(),
		"platforms":        len(h.platforms),
	})
}
