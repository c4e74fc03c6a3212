package repository

import (
	"encoding/json"
	"time"
)

type RecordTurnOptions struct {
	ConversationID   string
	Platform         string
	UserID           string
	MaxMessagesLimit int
	RetentionDays    int
	Role             string
	Content          string
	TokensUsed       int
	SearchCriteria   json.RawMessage
}

type ListConversationsOptions struct {
	Platform string
	UserID   string
	Limit    int
}

type ListActiveOptions struct {
	Since  time.Time
	Limit  int
	Offset int
}

type SetActiveOptions struct {
	ConversationID   string
	Platform         string
	UserID           string
	MaxMessagesLimit int
	Active           bool
}

type ListHistoryOptions struct {
	ConversationID string
	Limit          int
}
