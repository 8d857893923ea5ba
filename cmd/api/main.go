package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"intent-router/config"
	_ "intent-router/docs" // Swagger docs
	"intent-router/internal/httpserver"
	"intent-router/internal/middleware"
	"intent-router/internal/registry"
	routerDelivery "intent-router/internal/router/delivery/http"
	"intent-router/internal/router/usecase"
	"intent-router/pkg/log"
	"intent-router/pkg/ollama"
)

// @title       Intent Router API
// @description Routes natural-language requests to specialized downstream models, asking for clarification when intent is unclear.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama host: %s", cfg.Ollama.Host)

	// 3. Completion service client, optionally cache-fronted
	var llm ollama.IOllama
	llm, err = ollama.New(ollama.Config{
		Host:       cfg.Ollama.Host,
		HTTPClient: &http.Client{Timeout: cfg.Ollama.Timeout},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Ollama client: ", err)
		return
	}
	if cfg.Router.CacheEnabled {
		llm = ollama.NewCachedClient(llm, cfg.Router.CacheSize, cfg.Router.CacheTTL)
		logger.Infof(ctx, "Response cache enabled (size=%d, ttl=%s)", cfg.Router.CacheSize, cfg.Router.CacheTTL)
	}

	// 4. Capability registry
	reg := registry.New(cfg.Registry.Models, cfg.Router.DefaultModel)
	logger.Infof(ctx, "Capability registry loaded with %d models, default %q",
		len(reg.Models()), reg.Default())

	// 5. Router domain
	routerUC := usecase.New(llm, reg, usecase.Config{
		ClassifierModel:     cfg.Ollama.Model,
		ConfidenceThreshold: cfg.Router.ConfidenceThreshold,
		ClassifyTimeout:     cfg.Router.ClassifyTimeout,
	}, logger)
	routerHandler := routerDelivery.New(logger, routerUC)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.Router.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		RouterHandler: routerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
