package model

import (
	"encoding/json"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one stored turn. Ordering is by SequenceNumber, never by Timestamp.
type Message struct {
	ID             int64
	ConversationID string
	Role           string
	Content        string
	TokensUsed     int
	SequenceNumber int
	SearchCriteria json.RawMessage
	IsActive       bool
	Timestamp      time.Time
}
