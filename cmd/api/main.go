// ABOUTME: Main entry point for the CardForge API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardforge-api/api"
	"cardforge-api/api/handlers"
	"cardforge-api/core/card"
	"cardforge-api/core/extract"
	"cardforge-api/core/fetch"
	"cardforge-api/core/imagegen"
	"cardforge-api/core/interfaces"
	"cardforge-api/core/summarize"
	"cardforge-api/infrastructure/cache/memory"
	"cardforge-api/infrastructure/cache/redis"
	"cardforge-api/infrastructure/genai/openai"
	stdhttp "cardforge-api/infrastructure/http/standard"
	logruslogger "cardforge-api/infrastructure/logger/logrus"
	"cardforge-api/infrastructure/storage/sqlite"
	"cardforge-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting CardForge API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"text_model": cfg.GenAI.TextModel,
	})

	// Cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Card storage
	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open card storage: %v", err)
	}
	defer store.Close()

	// Outbound HTTP client for page fetching
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Generative backends
	genaiConfig := openai.Config{
		BaseURL:      cfg.GenAI.BaseURL,
		APIKey:       cfg.GenAI.APIKey,
		TextModel:    cfg.GenAI.TextModel,
		ImageModel:   cfg.GenAI.ImageModel,
		TextTimeout:  cfg.GenAI.TextTimeout,
		ImageTimeout: cfg.GenAI.ImageTimeout,
	}
	genaiClient := openai.NewClient(genaiConfig)
	textClient := openai.NewTextClient(genaiClient, genaiConfig, logger)
	imageClient := openai.NewImageClient(genaiClient, genaiConfig, logger)

	// Pipeline services
	fetchService := fetch.NewService(httpClient, logger)
	extractService := extract.NewService(logger)
	summarizeService := summarize.NewService(textClient, logger, cfg.GenAI.StrictSummary)
	backgroundService := imagegen.NewService(imageClient, logger)

	cardService := card.NewService(deps, fetchService, extractService, summarizeService, backgroundService, store)

	// API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:             logger,
		RateLimitPerSecond: cfg.Server.RateLimitPerSecond,
		RateLimitBurst:     cfg.Server.RateLimitBurst,
	})

	handlers.NewGenerateHandler(cardService).RegisterRoutes(humaAPI)
	handlers.NewCardsHandler(cardService).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // generation calls out to slow backends
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
