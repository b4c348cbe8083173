package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"assistant-relay/config"
	chatHTTP "assistant-relay/internal/chat/delivery/http"
	fileRepo "assistant-relay/internal/chat/repository/file"
	"assistant-relay/internal/chat/session"
	"assistant-relay/internal/chat/usecase"
	"assistant-relay/internal/httpserver"
	"assistant-relay/internal/middleware"
	"assistant-relay/pkg/log"
	"assistant-relay/pkg/openai"

	_ "assistant-relay/docs" // Swagger docs
)

// @title       Assistant Relay API
// @description Thin HTTP relay that forwards chat messages to an OpenAI assistant and logs conversations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Optional .env for local development
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Assistant Relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.OpenAI.APIKey == "" || cfg.OpenAI.AssistantID == "" {
		logger.Warn(ctx, "OPENAI_API_KEY or OPENAI_ASSISTANT_ID is missing; chat requests will fail")
	}

	// 3. Chat domain
	assistantClient := openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		assistantClient.SetBaseURL(cfg.OpenAI.BaseURL)
	}

	registry := session.New(logger, assistantClient)
	store := fileRepo.New(cfg.Chat.ConversationFile, logger)

	chatUC := usecase.New(logger, assistantClient, registry, store, usecase.Config{
		APIKey:          cfg.OpenAI.APIKey,
		AssistantID:     cfg.OpenAI.AssistantID,
		PollMaxAttempts: cfg.OpenAI.PollMaxAttempts,
		PollInitialWait: cfg.OpenAI.PollInitialWait,
	})

	chatHandler := chatHTTP.New(logger, chatUC)

	// 4. HTTP Server
	mw := middleware.New(logger, cfg.Chat)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
