package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KaveeshaKaru/investiAI/config"
	"github.com/KaveeshaKaru/investiAI/handler"
	"github.com/KaveeshaKaru/investiAI/middleware"
	"github.com/KaveeshaKaru/investiAI/pkg/logger"
	"github.com/KaveeshaKaru/investiAI/service"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	store, err := service.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	extractor, err := service.NewExtractionService(context.Background(), cfg.Gemini)
	if err != nil {
		slog.Error("failed to initialize extraction service", "error", err)
		os.Exit(1)
	}

	archive, err := service.NewArchiveService(&cfg.Archive)
	if err != nil {
		slog.Error("failed to initialize archive service", "error", err)
		os.Exit(1)
	}
	if archive != nil {
		if err := archive.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	intake := service.NewIntakeService(store, extractor, archive)

	authHandler := handler.NewAuthHandler(cfg)
	uploadHandler := handler.NewUploadHandler(intake)
	caseHandler := handler.NewCaseHandler(store)
	reportHandler := handler.NewReportHandler(store)
	documentHandler := handler.NewDocumentHandler(store)
	predictionHandler := handler.NewPredictionHandler(store)
	statsHandler := handler.NewStatsHandler(store)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware())
	router.Use(middleware.RateLimit(100, time.Minute))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.POST("/upload", uploadHandler.Upload)

		protected.GET("/cases", caseHandler.List)
		protected.POST("/cases", caseHandler.Create)
		protected.GET("/cases/:id", caseHandler.Get)
		protected.PUT("/cases/:id", caseHandler.Update)
		protected.DELETE("/cases/:id", caseHandler.Delete)

		protected.GET("/police-reports", reportHandler.List)
		protected.POST("/police-reports", reportHandler.Create)
		protected.GET("/police-reports/:id", reportHandler.Get)
		protected.PUT("/police-reports/:id", reportHandler.Update)
		protected.DELETE("/police-reports/:id", reportHandler.Delete)

		protected.GET("/documents", documentHandler.List)
		protected.POST("/documents", documentHandler.Create)
		protected.GET("/documents/:id", documentHandler.Get)
		protected.PUT("/documents/:id", documentHandler.Update)
		protected.DELETE("/documents/:id", documentHandler.Delete)

		protected.GET("/predictions", predictionHandler.List)
		protected.POST("/predictions", predictionHandler.Create)

		protected.GET("/stats", statsHandler.Get)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second, // extraction calls can run long
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
