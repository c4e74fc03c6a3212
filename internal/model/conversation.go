package model

import "time"

const (
	PlatformAPI  = "api"
	PlatformLine = "line"
)

// LinePrefix marks conversation ids that belong to LINE users.
const LinePrefix = "line_"

// Conversation represents one chat session, identified by an opaque id.
type Conversation struct {
	ConversationID   string
	Platform         string
	UserID           string
	MaxMessagesLimit int
	IsChatbotActive  bool
	PausedAt         *time.Time
	CreatedAt        time.Time
	LastActivity     time.Time
}
