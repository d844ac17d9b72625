package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
)

type Router struct {
	engine            *gin.Engine
	coordinateHandler *handler.CoordinateHandler
	exportHandler     *handler.ExportHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	allowedOrigins    []string
	logger            *zap.Logger
}

type RouterConfig struct {
	CoordinateHandler *handler.CoordinateHandler
	ExportHandler     *handler.ExportHandler
	AuthMiddleware    *middleware.AuthMiddleware
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	httputil.UseJSONFieldNames()

	r := &Router{
		engine:            engine,
		coordinateHandler: cfg.CoordinateHandler,
		exportHandler:     cfg.ExportHandler,
		authMiddleware:    cfg.AuthMiddleware,
		rateLimiter:       cfg.RateLimiter,
		allowedOrigins:    cfg.AllowedOrigins,
		logger:            cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, "/health", "/api/v1/health"))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) limit() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.rateLimiter.Limit()
}

func (r *Router) setupRoutes() {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.engine.GET("/health", health)

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	api.GET("/health", health)

	coordinates := api.Group("/coordinates")
	{
		coordinates.POST("/format", r.limit(), r.coordinateHandler.Format)

		private := coordinates.Group("")
		private.Use(r.authMiddleware.RequireAuth(), r.limit())
		{
			private.POST("/parse", r.coordinateHandler.Parse)
			private.POST("/parse/batch", r.coordinateHandler.BatchParse)
			private.POST("/export", r.exportHandler.Export)
			private.GET("", r.coordinateHandler.List)
			private.GET("/:id", r.coordinateHandler.Get)
			private.DELETE("/:id", r.coordinateHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
