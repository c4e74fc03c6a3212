package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chatbot-srv/config"
	configAI "chatbot-srv/config/ai"
	configMinio "chatbot-srv/config/minio"
	configPostgre "chatbot-srv/config/postgre"
	configProduct "chatbot-srv/config/product"
	"chatbot-srv/internal/scheduler"
	"chatbot-srv/pkg/discord"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chatbot Scheduler...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgresDB.Close()
	logger.Info(ctx, "PostgreSQL connected")

	// MinIO (optional)
	var minioClient pkgMinio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinio.Connect(ctx, &cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		defer minioClient.Close()
		logger.Info(ctx, "MinIO connected")
	}

	// Gemini + file cache
	geminiClient, err := configAI.ConnectGemini(cfg.Gemini)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini: %v", err)
		return
	}
	fileManager := configAI.ConnectFileManager(geminiClient, cfg.Chat, logger)

	// Product API
	productClient := configProduct.Connect(cfg.Product, cfg.Chat.CacheDir)

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	srv, err := scheduler.New(scheduler.Config{
		Logger:        logger,
		Config:        cfg,
		PostgresDB:    postgresDB,
		MinIO:         minioClient,
		GeminiClient:  geminiClient,
		ProductClient: productClient,
		FileManager:   fileManager,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create scheduler: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Scheduler error: %v", err)
		return
	}
}
