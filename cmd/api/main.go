package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/event"
	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/events"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/coordinate"
	"github.com/marcos-nsantos/geocoord-backend/internal/usecase/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format,
		zap.String("service", "geocoord-api"),
		zap.String("environment", cfg.Server.Environment),
	)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.MigrationsPath != "" {
		applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
		if err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Strings("versions", applied))
	}

	postgisVersion, err := database.PostGISVersion(ctx, pool)
	if err != nil {
		logger.Fatal("postgis unavailable", zap.Error(err))
	}
	logger.Info("connected to database", zap.String("postgis", postgisVersion))

	// Repositories
	parseRecordRepo := postgres.NewParseRecordRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}

	var publisher interface {
		event.Publisher
		io.Closer
	} = events.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka, logger)
	}
	defer publisher.Close()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Use cases
	coordinateSvc, err := coordinate.NewService(parseRecordRepo, publisher, coordinate.Config{
		DefaultGlobe: cfg.Parser.DefaultGlobe,
		CacheSize:    cfg.Parser.CacheSize,
		MaxBatchSize: cfg.Parser.MaxBatchSize,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create coordinate service", zap.Error(err))
	}
	exportSvc := export.NewService(parseRecordRepo, s3Storage, cfg.Export.KeyPrefix, cfg.Export.URLExpiry)

	// Handlers
	coordinateHandler := handler.NewCoordinateHandler(coordinateSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		CoordinateHandler: coordinateHandler,
		ExportHandler:     exportHandler,
		AuthMiddleware:    authMiddleware,
		RateLimiter:       rateLimiter,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		Logger:            logger,
		Environment:       cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
