package conversation

import (
	"encoding/json"
	"time"

	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/paginator"
)

const (
	DefaultMaxMessages     = 50
	DefaultRetentionDays   = 3
	DefaultAutoResumeAfter = 30 * time.Minute
	DefaultIdleCleanup     = 24 * time.Hour
	DefaultListLimit       = 100
	DefaultActiveDays      = 2

	// ImageObjectPrefix is the object storage folder holding images archived per conversation.
	ImageObjectPrefix = "line"
)

// ImagePrefix returns the object key prefix of the images archived for conversationID.
func ImagePrefix(conversationID string) string {
	return ImageObjectPrefix + "/" + conversationID + "/"
}

// Config tunes history size and maintenance thresholds.
type Config struct {
	MaxMessages     int
	RetentionDays   int
	AutoResumeAfter time.Duration
	IdleCleanup     time.Duration
}

type RecordTurnInput struct {
	ConversationID string
	Role           string
	Content        string
	TokensUsed     int
	SearchCriteria json.RawMessage
}

type ListActiveInput struct {
	Days     int
	Paginate paginator.PaginateQuery
}

type ListActiveOutput struct {
	Conversations []model.Conversation
	Paginator     paginator.Paginator
}

type ConversationOutput struct {
	Conversation model.Conversation
	Messages     []model.Message
	TotalTokens  int
}
