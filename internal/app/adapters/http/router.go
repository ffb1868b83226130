package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"streamwatch/internal/app/adapters/http/handlers"
	"streamwatch/internal/app/adapters/http/middlewares"
	"streamwatch/internal/app/infrastructure/config"
	"streamwatch/internal/app/ports"
	"streamwatch/pkg/logger"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, platforms map[string]ports.PlatformPort, roster ports.RosterPort, stats ports.StatsPort) *Router {
	r := &Router{
		router:      gin.Default(),
		handlers:    handlers.New(log, manager, platforms, roster, stats),
		middlewares: middlewares.New(),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	pprofGroup := r.router.Group("/", gin.BasicAuth(gin.Accounts{
		"admin": cfg.App.AuthToken,
	}))
	pprof.Register(pprofGroup)

	r.router.GET("/metrics", gin.BasicAuth(gin.Accounts{
		"admin": cfg.App.AuthToken,
	}), gin.WrapH(promhttp.Handler()))

	api := r.router.Group("/api")
	api.GET("/streamers", r.handlers.StreamersHandler)
	api.GET("/stats", r.handlers.StatsHandler)
	api.GET("/status", r.handlers.StatusHandler)

	admin := r.router.Group("/api/admin", r.middlewares.Auth(cfg.App.AuthToken))
	admin.POST("/cache/clear", r.handlers.CacheClearHandler)

	return r
}

func (r *Router) Run() error {
	cfg := r.manager.Get()
	return r.newServer(cfg.App.ListenAddr, r.router).ListenAndServe()
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}
