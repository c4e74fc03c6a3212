package line

import "time"

const (
	// APIBaseURL serves push, loading and profile calls.
	APIBaseURL = "https://api.line.me/v2/bot"
	// DataBaseURL serves message content downloads.
	DataBaseURL = "https://api-data.line.me/v2/bot"

	DefaultTimeout = 30 * time.Second

	// MaxMessageLength keeps pushed text under LINE's 5000 character limit.
	MaxMessageLength = 4900

	MinLoadingSeconds = 5
	MaxLoadingSeconds = 60

	SignatureHeader = "X-Line-Signature"
)

// Event, source and message types handled by the webhook.
const (
	EventTypeMessage = "message"

	SourceTypeUser  = "user"
	SourceTypeGroup = "group"
	SourceTypeRoom  = "room"

	MessageTypeText  = "text"
	MessageTypeImage = "image"
)
