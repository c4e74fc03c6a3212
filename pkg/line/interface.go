package line

import (
	"context"
	"time"

	pkghttp "chatbot-srv/pkg/http"
)

// ILine is the LINE Messaging API client.
// Implementations are safe for concurrent use.
type ILine interface {
	// PushText pushes one text message to a user, group or room.
	PushText(ctx context.Context, to, text string) error
	// ShowLoading starts the loading animation in a 1:1 chat. seconds is clamped to 5..60.
	ShowLoading(ctx context.Context, chatID string, seconds int) error
	// Content downloads the binary content of a message and its content type.
	Content(ctx context.Context, messageID string) ([]byte, string, error)
	GetProfile(ctx context.Context, userID string) (Profile, error)
}

// New creates a LINE client. Returns the interface.
func New(cfg LineConfig) (ILine, error) {
	if cfg.ChannelAccessToken == "" {
		return nil, ErrAccessTokenRequired
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = APIBaseURL
	}
	if cfg.DataBaseURL == "" {
		cfg.DataBaseURL = DataBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   1,
			RetryWait: time.Second,
		})
	}
	return &lineImpl{
		accessToken: cfg.ChannelAccessToken,
		apiBaseURL:  cfg.APIBaseURL,
		dataBaseURL: cfg.DataBaseURL,
		httpClient:  cfg.HTTPClient,
	}, nil
}
