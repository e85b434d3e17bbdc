package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tunegrab/tunegrab/internal/api/handlers"
	"github.com/tunegrab/tunegrab/internal/api/middleware"
	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/web"
)

type Router struct {
	engine *gin.Engine
	server *http.Server
	config *config.Config
}

func NewRouter(cfg *config.Config, searchHandler *handlers.SearchHandler, downloadHandler *handlers.DownloadHandler, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	if cfg.CORS.Enabled {
		engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	}

	// Health endpoints
	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
	}

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API endpoints
	api := engine.Group("/api")
	{
		api.GET("/search", searchHandler.Search)       // /api/search?q=
		api.GET("/download", downloadHandler.Download) // /api/download?videoId=
		api.GET("/video", videoHandler.Details)        // /api/video?videoId=
	}

	// Embedded browser UI
	web.Register(engine)

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	r.server = &http.Server{
		Addr:    addr,
		Handler: r.engine,
	}
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
