package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChauhanSai/hackrice25/internal/api"
	"github.com/ChauhanSai/hackrice25/internal/api/middleware"
	"github.com/ChauhanSai/hackrice25/internal/config"
	"github.com/ChauhanSai/hackrice25/internal/logger"
	"github.com/ChauhanSai/hackrice25/internal/metrics"
	"github.com/ChauhanSai/hackrice25/internal/service"
	"github.com/ChauhanSai/hackrice25/internal/storage"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Object storage for uploaded session videos
	objectStorage, err := storage.NewS3Storage(&storage.S3Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize storage")
	}

	ctx := context.Background()
	if err := objectStorage.EnsureBucket(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to ensure storage bucket")
	}

	// External service adapters
	indexingService := service.NewIndexingService(&service.IndexingConfig{
		APIKey:  cfg.TwelveLabs.APIKey,
		BaseURL: cfg.TwelveLabs.BaseURL,
	})
	searchService := service.NewSearchService(&service.SemanticSearchConfig{
		APIKey:          cfg.TwelveLabs.APIKey,
		BaseURL:         cfg.TwelveLabs.BaseURL,
		IndexID:         cfg.Search.IndexID,
		Options:         cfg.Search.Options,
		GroupBy:         cfg.Search.GroupBy,
		Operator:        cfg.Search.Operator,
		PageLimit:       cfg.Search.PageLimit,
		SortOption:      cfg.Search.SortOption,
		ConfidenceFloor: cfg.Search.ConfidenceFloor,
	})
	rewriteService := service.NewRewriteService(&service.RewriteConfig{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
	})
	quizService := service.NewQuizService(&service.RewriteConfig{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
	})
	zoomService := service.NewZoomService(&service.ZoomConfig{
		ClientID:     cfg.Zoom.ClientID,
		ClientSecret: cfg.Zoom.ClientSecret,
		AccountID:    cfg.Zoom.AccountID,
		OAuthURL:     cfg.Zoom.OAuthURL,
		APIURL:       cfg.Zoom.APIURL,
	})

	// Orchestrators
	ingestService := service.NewIngestService(objectStorage, indexingService)
	queryService := service.NewQueryService(rewriteService, searchService)
	transcriptService := service.NewTranscriptService(indexingService)

	m := metrics.New()

	router := api.SetupRouter(&api.Services{
		Ingest:      ingestService,
		Clips:       queryService,
		Analyzer:    indexingService,
		Transcripts: transcriptService,
		Quizzes:     quizService,
		Recordings:  zoomService,
	}, m, appLogger, &api.RouterConfig{
		Mode: cfg.Server.Mode,
		CORS: middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting API server on port %d (mode=%s)", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
