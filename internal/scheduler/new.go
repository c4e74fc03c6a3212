package scheduler

import (
	"fmt"
)

// New creates a new scheduler server with dependency validation
func New(cfg Config) (*SchedulerServer, error) {
	srv := &SchedulerServer{
		l:             cfg.Logger,
		cfg:           cfg.Config,
		postgresDB:    cfg.PostgresDB,
		minio:         cfg.MinIO,
		geminiClient:  cfg.GeminiClient,
		productClient: cfg.ProductClient,
		fileManager:   cfg.FileManager,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *SchedulerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.cfg == nil {
		return fmt.Errorf("config is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}

	// External clients
	if srv.geminiClient == nil {
		return fmt.Errorf("gemini client is required")
	}
	if srv.productClient == nil {
		return fmt.Errorf("product client is required")
	}
	if srv.fileManager == nil {
		return fmt.Errorf("file manager is required")
	}

	return nil
}
