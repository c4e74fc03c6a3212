package scheduler

import (
	"context"

	"chatbot-srv/config"
	"chatbot-srv/pkg/discord"
	"chatbot-srv/pkg/filemanager"
	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
	pkgPostgre "chatbot-srv/pkg/postgre"
	"chatbot-srv/pkg/product"

	"github.com/robfig/cron/v3"
)

// SchedulerServer runs the periodic maintenance jobs.
type SchedulerServer struct {
	// Core Configuration
	l   log.Logger
	cfg *config.Config

	// Infrastructure clients
	postgresDB pkgPostgre.IDatabase
	minio      pkgMinio.MinIO

	// External clients
	geminiClient  gemini.IGemini
	productClient product.IProduct
	fileManager   filemanager.IFileManager

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the scheduler server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	PostgresDB pkgPostgre.IDatabase
	// MinIO is optional; archived images of deleted conversations are removed when set.
	MinIO pkgMinio.MinIO

	// External clients
	GeminiClient  gemini.IGemini
	ProductClient product.IProduct
	FileManager   filemanager.IFileManager

	// Monitoring & Notification (optional)
	Discord discord.IDiscord
}

// Run registers every job and blocks until ctx is cancelled.
// Running jobs are allowed to finish before Run returns.
func (srv *SchedulerServer) Run(ctx context.Context) error {
	j := srv.setupDomains(ctx)

	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{l: srv.l}),
		cron.SkipIfStillRunning(cronLogger{l: srv.l}),
	))
	if err := j.register(c, srv.cfg.Scheduler); err != nil {
		srv.l.Errorf(ctx, "Failed to register jobs: %v", err)
		return err
	}

	c.Start()
	srv.l.Infof(ctx, "Scheduler is running with %d jobs", len(c.Entries()))

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, waiting for running jobs...")

	<-c.Stop().Done()

	srv.l.Info(ctx, "Scheduler stopped gracefully")
	return nil
}
