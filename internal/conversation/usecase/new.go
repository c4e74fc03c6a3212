package usecase

import (
	"time"

	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/pkg/log"
)

type implUseCase struct {
	repo   repository.PostgresRepository
	images repository.ImageRepository
	cfg    conversation.Config
	l      log.Logger
	now    func() time.Time
}

// Option configures optional dependencies.
type Option func(*implUseCase)

// WithImages removes archived images together with their conversation.
func WithImages(images repository.ImageRepository) Option {
	return func(uc *implUseCase) {
		uc.images = images
	}
}

// New - Factory function
func New(repo repository.PostgresRepository, cfg conversation.Config, l log.Logger, opts ...Option) conversation.UseCase {
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = conversation.DefaultMaxMessages
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = conversation.DefaultRetentionDays
	}
	if cfg.AutoResumeAfter <= 0 {
		cfg.AutoResumeAfter = conversation.DefaultAutoResumeAfter
	}
	if cfg.IdleCleanup <= 0 {
		cfg.IdleCleanup = conversation.DefaultIdleCleanup
	}
	uc := &implUseCase{
		repo: repo,
		cfg:  cfg,
		l:    l,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
