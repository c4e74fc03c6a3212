package kafka

import (
	"encoding/json"
	"time"
)

// TurnCompletedMessage - Kafka message for chat.turn.completed
type TurnCompletedMessage struct {
	ConversationID string          `json:"conversation_id"`
	Platform       string          `json:"platform"`
	Language       string          `json:"language"`
	TokensUsed     int             `json:"tokens_used"`
	SearchCriteria json.RawMessage `json:"search_criteria,omitempty"`
	Success        bool            `json:"success"`
	Error          string          `json:"error,omitempty"`
	CompletedAt    time.Time       `json:"completed_at"`
}
