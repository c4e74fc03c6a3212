package discord

import (
	"errors"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C

	maxDescriptionLen = 4096
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:         webhookBaseURL,
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "chatbot-srv",
	}
}
