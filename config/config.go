package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gemini - LLM + File API
	Gemini GeminiConfig

	// Product API - catalog, search, detail, quotation
	Product ProductConfig

	// LINE Messaging API
	Line LineConfig

	// Conversation behaviour and local caches
	Chat ChatConfig

	RateLimit RateLimitConfig

	// PostgreSQL - conversations, messages, authorized users
	Postgres PostgresConfig

	// Redis - rate limiting, webhook de-duplication
	Redis RedisConfig

	// MinIO - archive of images received through LINE
	MinIO MinIOConfig

	// Kafka - chat turn analytics events
	Kafka KafkaConfig

	// Admin API
	JWT   JWTConfig
	Admin AdminConfig

	Scheduler SchedulerConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
	// BasePaths mounts every route under each prefix. Empty means root only.
	BasePaths []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig is the configuration for Google Gemini. Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
}

// ProductConfig points at the Sirichai product API.
type ProductConfig struct {
	CatalogSummaryURL string
	SearchURL         string
	DetailURL         string
	QuotationURL      string
	Timeout           int // in seconds
}

// LineConfig is the configuration for the LINE Messaging API.
type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
	VerifySignature    bool
	TriggerPrefix      string
}

// ChatConfig tunes conversation persistence and local caches.
type ChatConfig struct {
	MaxMessages        int
	RetentionDays      int
	AutoResumeMinutes  int
	IdleCleanupHours   int
	CacheDir           string
	SystemPromptPath   string
	FileCacheMaxAgeSec int
	WebsiteURL         string
}

// RateLimitConfig is the per-client limit for the chat API.
type RateLimitConfig struct {
	MaxRequestsPerMinute int
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
	// MaxRetries is how many times a failed operation reconnects and retries.
	MaxRetries int
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// JWTConfig signs and verifies admin tokens.
type JWTConfig struct {
	Issuer    string
	SecretKey string
	TTL       int // in seconds
}

// AdminConfig holds the single admin account.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// SchedulerConfig holds cron specs for background jobs.
type SchedulerConfig struct {
	AutoResumeSpec     string
	CleanupSpec        string
	CatalogRefreshSpec string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// legacyEnv maps config keys to the flat variable names used by older .env files.
var legacyEnv = map[string]string{
	"gemini.api_key":           "GEMINI_API_KEY",
	"gemini.model":             "GEMINI_MODEL",
	"gemini.temperature":       "GEMINI_TEMPERATURE",
	"gemini.max_output_tokens": "GEMINI_MAX_OUTPUT_TOKENS",

	"product.catalog_summary_url": "CATALOG_SUMMARY_URL",
	"product.search_url":          "PRODUCT_SEARCH_URL",
	"product.detail_url":          "PRODUCT_DETAIL_URL",
	"product.quotation_url":       "PRODUCT_QUOTATION_URL",

	"line.channel_secret":       "LINE_CHANNEL_SECRET",
	"line.channel_access_token": "LINE_CHANNEL_ACCESS_TOKEN",
	"line.verify_signature":     "VERIFY_LINE_SIGNATURE",

	"chat.max_messages":        "MAX_MESSAGES_PER_CONVERSATION",
	"chat.auto_resume_minutes": "AUTO_RESUME_TIMEOUT_MINUTES",
	"chat.website_url":         "WEBSITE_URL",

	"rate_limit.max_requests_per_minute": "MAX_REQUESTS_PER_MINUTE",
	"http_server.base_path":              "API_BASE_PATH",

	"postgres.host":     "DB_HOST",
	"postgres.port":     "DB_PORT",
	"postgres.dbname":   "DB_NAME",
	"postgres.user":     "DB_USER",
	"postgres.password": "DB_PASSWORD",

	"admin.username":      "ADMIN_USERNAME",
	"admin.password_hash": "ADMIN_PASSWORD_HASH",
}

// Load loads configuration using Viper. A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// Missing .env is normal in containers.
	_ = godotenv.Load()

	viper.SetConfigName("chatbot-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/sirichai/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, env := range legacyEnv {
		envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := viper.BindEnv(key, envKey, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.BasePaths = splitBasePaths(viper.GetString("http_server.base_path"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.MaxOutputTokens = viper.GetInt("gemini.max_output_tokens")

	// Product API
	cfg.Product.CatalogSummaryURL = viper.GetString("product.catalog_summary_url")
	cfg.Product.SearchURL = viper.GetString("product.search_url")
	cfg.Product.DetailURL = viper.GetString("product.detail_url")
	cfg.Product.QuotationURL = viper.GetString("product.quotation_url")
	cfg.Product.Timeout = viper.GetInt("product.timeout")

	// LINE
	cfg.Line.ChannelSecret = viper.GetString("line.channel_secret")
	cfg.Line.ChannelAccessToken = viper.GetString("line.channel_access_token")
	cfg.Line.VerifySignature = viper.GetBool("line.verify_signature")
	cfg.Line.TriggerPrefix = viper.GetString("line.trigger_prefix")

	// Chat
	cfg.Chat.MaxMessages = viper.GetInt("chat.max_messages")
	cfg.Chat.RetentionDays = viper.GetInt("chat.retention_days")
	cfg.Chat.AutoResumeMinutes = viper.GetInt("chat.auto_resume_minutes")
	cfg.Chat.IdleCleanupHours = viper.GetInt("chat.idle_cleanup_hours")
	cfg.Chat.CacheDir = viper.GetString("chat.cache_dir")
	cfg.Chat.SystemPromptPath = viper.GetString("chat.system_prompt_path")
	cfg.Chat.FileCacheMaxAgeSec = viper.GetInt("chat.file_cache_max_age")
	cfg.Chat.WebsiteURL = viper.GetString("chat.website_url")

	cfg.RateLimit.MaxRequestsPerMinute = viper.GetInt("rate_limit.max_requests_per_minute")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")
	cfg.Postgres.MaxRetries = viper.GetInt("postgres.max_retries")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Enabled = viper.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Admin
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")
	cfg.Admin.Username = viper.GetString("admin.username")
	cfg.Admin.PasswordHash = viper.GetString("admin.password_hash")

	// Scheduler
	cfg.Scheduler.AutoResumeSpec = viper.GetString("scheduler.auto_resume_spec")
	cfg.Scheduler.CleanupSpec = viper.GetString("scheduler.cleanup_spec")
	cfg.Scheduler.CatalogRefreshSpec = viper.GetString("scheduler.catalog_refresh_spec")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.base_path", "")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Gemini
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.max_output_tokens", 1024)

	// Product API
	viper.SetDefault("product.timeout", 30)

	// LINE
	viper.SetDefault("line.verify_signature", true)
	viper.SetDefault("line.trigger_prefix", "zx")

	// Chat
	viper.SetDefault("chat.max_messages", 50)
	viper.SetDefault("chat.retention_days", 3)
	viper.SetDefault("chat.auto_resume_minutes", 30)
	viper.SetDefault("chat.idle_cleanup_hours", 24)
	viper.SetDefault("chat.cache_dir", "./cache")
	viper.SetDefault("chat.system_prompt_path", "./system-prompt.txt")
	viper.SetDefault("chat.file_cache_max_age", 165600) // 46 hours
	viper.SetDefault("chat.website_url", "https://assistant.sirichaielectric.com/")

	viper.SetDefault("rate_limit.max_requests_per_minute", 15)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.schema", "public")
	viper.SetDefault("postgres.max_retries", 1)

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// MinIO
	viper.SetDefault("minio.enabled", false)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "chatbot-line-images")

	// Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "chat.turn.completed")

	// Admin
	viper.SetDefault("jwt.issuer", "chatbot-srv")
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Scheduler
	viper.SetDefault("scheduler.auto_resume_spec", "*/5 * * * *")
	viper.SetDefault("scheduler.cleanup_spec", "0 * * * *")
	viper.SetDefault("scheduler.catalog_refresh_spec", "0 */6 * * *")
}

func validate(cfg *Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if cfg.Product.CatalogSummaryURL == "" {
		return fmt.Errorf("product.catalog_summary_url is required")
	}
	if cfg.Product.SearchURL == "" {
		return fmt.Errorf("product.search_url is required")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.MinIO.Enabled && (cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "") {
		return fmt.Errorf("minio.access_key and minio.secret_key are required when minio is enabled")
	}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}

	if cfg.Admin.PasswordHash != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters when the admin API is enabled")
	}

	return nil
}

// FileCacheMaxAge returns the remote file cache lifetime.
func (c ChatConfig) FileCacheMaxAge() time.Duration {
	return time.Duration(c.FileCacheMaxAgeSec) * time.Second
}

// AutoResumeAfter returns how long a conversation may stay paused.
func (c ChatConfig) AutoResumeAfter() time.Duration {
	return time.Duration(c.AutoResumeMinutes) * time.Minute
}

func splitBasePaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paths = append(paths, "/"+strings.Trim(p, "/"))
	}
	return paths
}
