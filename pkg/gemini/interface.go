package gemini

import (
	"context"
	"time"

	pkghttp "chatbot-srv/pkg/http"
)

// IGemini is the composite Gemini client.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generator
	FileStore
}

// Generator calls generateContent.
type Generator interface {
	// GenerateContent sends req to the configured model. A non-2xx status yields *APIError,
	// a network failure wraps ErrTransport.
	GenerateContent(ctx context.Context, req Request) (Response, error)
	// GenerationConfig returns the sampling defaults the client was built with.
	GenerationConfig() GenerationConfig
}

// FileStore manages File API uploads.
type FileStore interface {
	UploadFile(ctx context.Context, content []byte, displayName, mimeType string) (File, error)
	GetFile(ctx context.Context, name string) (File, error)
	ListFiles(ctx context.Context) ([]File, error)
	DeleteFile(ctx context.Context, name string) error
}

// New creates a new Gemini client. Model defaults to DefaultModel if empty.
func New(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.UploadURL == "" {
		cfg.UploadURL = UploadURL
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputToks
	}
	if cfg.HTTPClient == nil {
		// generateContent failures are classified by the caller, so the transport never retries.
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   0,
			RetryWait: time.Second,
		})
	}
	return &geminiImpl{
		apiKey:          cfg.APIKey,
		model:           cfg.Model,
		baseURL:         cfg.BaseURL,
		uploadURL:       cfg.UploadURL,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		httpClient:      cfg.HTTPClient,
	}, nil
}
