package usecase

import (
	"os"
	"strings"
	"time"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/pkg/filemanager"
	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
	"chatbot-srv/pkg/product"
)

type implUseCase struct {
	gemini       gemini.Generator
	product      product.IProduct
	files        filemanager.IFileManager
	convUC       conversation.UseCase
	producer     chatbot.Producer
	cfg          chatbot.Config
	systemPrompt string
	l            log.Logger

	retryDelay func(attempt int) time.Duration
	sleep      func(d time.Duration) <-chan time.Time
	now        func() time.Time
}

// Option customizes implUseCase.
type Option func(*implUseCase)

// WithProducer publishes a TurnCompleted event after every recorded exchange.
func WithProducer(p chatbot.Producer) Option {
	return func(uc *implUseCase) { uc.producer = p }
}

// WithProduct enables the product functions and the catalog file.
func WithProduct(p product.IProduct) Option {
	return func(uc *implUseCase) { uc.product = p }
}

// WithFileManager enables the catalog file upload.
func WithFileManager(fm filemanager.IFileManager) Option {
	return func(uc *implUseCase) { uc.files = fm }
}

// New - Factory function
func New(l log.Logger, gen gemini.Generator, convUC conversation.UseCase, cfg chatbot.Config, opts ...Option) chatbot.UseCase {
	uc := &implUseCase{
		gemini:       gen,
		convUC:       convUC,
		cfg:          cfg,
		systemPrompt: loadSystemPrompt(cfg.SystemPromptPath),
		l:            l,
		retryDelay:   func(attempt int) time.Duration { return time.Duration(attempt+1) * time.Second },
		sleep:        time.After,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func loadSystemPrompt(path string) string {
	if path == "" {
		return chatbot.DefaultSystemPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return chatbot.DefaultSystemPrompt
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return chatbot.DefaultSystemPrompt
	}
	return prompt
}
