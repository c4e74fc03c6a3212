package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chatbot-srv/config"
	configAI "chatbot-srv/config/ai"
	configKafka "chatbot-srv/config/kafka"
	configLine "chatbot-srv/config/line"
	configMinio "chatbot-srv/config/minio"
	configPostgre "chatbot-srv/config/postgre"
	configProduct "chatbot-srv/config/product"
	configRedis "chatbot-srv/config/redis"
	_ "chatbot-srv/docs" // Import swagger docs
	"chatbot-srv/internal/httpserver"
	"chatbot-srv/pkg/discord"
	pkgJWT "chatbot-srv/pkg/jwt"
	pkgKafka "chatbot-srv/pkg/kafka"
	pkgLine "chatbot-srv/pkg/line"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
)

// @title       Sirichai Electric Chatbot API
// @description Customer support chatbot: JSON chat API, LINE webhook and admin API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Admin token from /admin/login. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads .env, the optional YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgresDB.Close()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		defer discordClient.Close()
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize MinIO (optional)
	var minioClient pkgMinio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinio.Connect(ctx, &cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer minioClient.Close()
		logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 7. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka: ", err)
			return
		}
		defer kafkaProducer.Close()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 8. Initialize external clients
	geminiClient, err := configAI.ConnectGemini(cfg.Gemini)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini: ", err)
		return
	}
	fileManager := configAI.ConnectFileManager(geminiClient, cfg.Chat, logger)
	productClient := configProduct.Connect(cfg.Product, cfg.Chat.CacheDir)

	lineClient, err := configLine.Connect(cfg.Line)
	if err != nil {
		if !errors.Is(err, pkgLine.ErrAccessTokenRequired) {
			logger.Error(ctx, "Failed to initialize LINE client: ", err)
			return
		}
		lineClient = nil
	}

	// 9. Initialize JWT Manager (admin API, optional)
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Warnf(ctx, "Admin API disabled: %v", err)
		jwtManager = nil
	}

	// 10. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		BasePaths:   cfg.HTTPServer.BasePaths,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage & Messaging Configuration
		MinIO:         minioClient,
		KafkaProducer: kafkaProducer,

		// External Clients
		GeminiClient:  geminiClient,
		ProductClient: productClient,
		FileManager:   fileManager,
		LineClient:    lineClient,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (pkgJWT.IManager, error) {
	if cfg.Admin.PasswordHash == "" {
		return nil, errors.New("admin.password_hash is not set")
	}
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
