// Package main runs the Career Launch platform HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/career-launch/backend/config"
	"github.com/career-launch/backend/internal/booths"
	"github.com/career-launch/backend/internal/catalog"
	"github.com/career-launch/backend/internal/middleware"
	"github.com/career-launch/backend/internal/registration"
	"github.com/career-launch/backend/internal/sessionctx"
	"github.com/career-launch/backend/internal/sessions"
	"github.com/career-launch/backend/internal/worker"
	"github.com/career-launch/backend/pkg/database"
	"github.com/career-launch/backend/pkg/queue"
	"github.com/career-launch/backend/pkg/redis"
	"github.com/career-launch/backend/pkg/response"
	"github.com/career-launch/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var videos *storage.Videos
	if cfg.AWS.Region != "" {
		videosCfg := storage.VideosConfig{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			Bucket:               cfg.AWS.VideosBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}
		videos, err = storage.NewVideos(ctx, videosCfg, logger)
		if err != nil {
			logger.Warn("video storage disabled", zap.Error(err))
		}
	}

	grants := sessions.NewGrantService(cfg.Access.GrantSecret, cfg.Access.GrantExpireMinutes)
	ctxStore := sessionctx.NewRedisStore(rdb.Client)
	jobQueue := queue.NewQueue(rdb.Client, logger)

	// Catalog
	catalogRepo := catalog.NewRepository(pool)
	catalogHandler := catalog.NewHandler(catalogRepo, logger)
	boothHandler := booths.NewHandler(catalogRepo, logger)
	sessionHandler := sessions.NewHandler(catalogRepo, grants, ctxStore, videos, logger)

	// Registration
	registrationRepo := registration.NewRepository(pool)
	sink := registration.NewFanoutSink(logger,
		registration.NewLogSink(logger),
		registrationRepo,
		registration.NewQueueSink(jobQueue, logger),
	)
	registrationHandler := registration.NewHandler(registrationRepo, catalogRepo, sink, grants, logger)

	// Session context
	contextHandler := sessionctx.NewHandler(ctxStore, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.Use(middleware.Visitor())
	{
		// Catalog
		api.GET("/booths", catalogHandler.ListBooths)
		api.GET("/booths/:slug", boothHandler.GetBySlug)
		api.GET("/booths/:slug/layout", boothHandler.GetLayout)
		api.GET("/sessions", catalogHandler.ListSessions)
		api.GET("/sessions/categories", catalogHandler.SessionsByCategory)
		api.GET("/sessions/:slug", sessionHandler.GetBySlug)

		// Registration flow
		api.GET("/boards", registrationHandler.ListBoards)
		api.GET("/boards/:id/schools", registrationHandler.ListSchools)
		api.GET("/register/prefill", registrationHandler.Prefill)
		api.POST("/register/validate", registrationHandler.Validate)
		api.POST("/sessions/:slug/register", registrationHandler.Register)

		// Gated video access
		api.GET("/sessions/:slug/video", sessionHandler.Video)

		// Session-context relay
		api.POST("/sessions/:slug/context", contextHandler.Save)
		api.GET("/sessions/:slug/context", contextHandler.Get)
		api.DELETE("/sessions/:slug/context", contextHandler.Clear)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// In-process confirmation worker; cmd/worker runs the standalone one.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	processor := worker.NewConfirmationProcessor(registrationRepo, jobQueue, cfg.Email, logger)
	go processor.Run(workerCtx)

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	workerCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
