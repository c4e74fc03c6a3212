package httpserver

import (
	"errors"

	"chatbot-srv/config"
	"chatbot-srv/pkg/discord"
	"chatbot-srv/pkg/filemanager"
	"chatbot-srv/pkg/gemini"
	pkgJWT "chatbot-srv/pkg/jwt"
	pkgKafka "chatbot-srv/pkg/kafka"
	pkgLine "chatbot-srv/pkg/line"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
	pkgPostgre "chatbot-srv/pkg/postgre"
	"chatbot-srv/pkg/product"
	pkgRedis "chatbot-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	basePaths   []string

	// Database Configuration
	postgresDB  pkgPostgre.IDatabase
	redisClient pkgRedis.IRedis

	// Storage Configuration (optional)
	minio pkgMinio.MinIO

	// Messaging Configuration (optional)
	kafkaProducer pkgKafka.IProducer

	// External Clients
	geminiClient  gemini.IGemini
	productClient product.IProduct
	fileManager   filemanager.IFileManager
	lineClient    pkgLine.ILine

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	BasePaths   []string

	// Database Configuration
	PostgresDB  pkgPostgre.IDatabase
	RedisClient pkgRedis.IRedis

	// Storage Configuration (optional)
	MinIO pkgMinio.MinIO

	// Messaging Configuration (optional)
	KafkaProducer pkgKafka.IProducer

	// External Clients
	GeminiClient  gemini.IGemini
	ProductClient product.IProduct
	FileManager   filemanager.IFileManager
	// LineClient is nil when no channel access token is configured; the webhook is not mounted then.
	LineClient pkgLine.ILine

	// Authentication & Security Configuration
	Config *config.Config
	// JWTManager is nil when the admin API is disabled.
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	basePaths := cfg.BasePaths
	if len(basePaths) == 0 {
		basePaths = []string{"/"}
	}

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		basePaths:   basePaths,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage Configuration
		minio: cfg.MinIO,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,

		// External Clients
		geminiClient:  cfg.GeminiClient,
		productClient: cfg.ProductClient,
		fileManager:   cfg.FileManager,
		lineClient:    cfg.LineClient,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// External Clients
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	if srv.productClient == nil {
		return errors.New("productClient is required")
	}
	if srv.fileManager == nil {
		return errors.New("fileManager is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}

	// MinIO, Kafka, LINE, JWT and Discord are optional

	return nil
}
