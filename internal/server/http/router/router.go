package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fundvault/internal/config"
	"github.com/polkiloo/fundvault/internal/metrics"
	"github.com/polkiloo/fundvault/internal/server/http/handlers"
	"github.com/polkiloo/fundvault/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.Facade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	authHandler := handlers.NewAuthHandler(facade)
	fundHandler := handlers.NewFundHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.POST("/register", authHandler.Register)
	engine.POST("/login", authHandler.Login)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/saved", fundHandler.List)
	authed.POST("/save", fundHandler.Save)
	authed.POST("/remove", fundHandler.Remove)

	if cfg.AllowInsecureReset {
		engine.POST("/reset-password", authHandler.ResetPassword)
	} else {
		authed.POST("/reset-password", authHandler.ResetPassword)
	}

	return engine
}
