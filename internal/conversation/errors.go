package conversation

import "errors"

// Domain errors
var (
	ErrConversationNotFound = errors.New("conversation: not found")
	ErrConversationIDEmpty  = errors.New("conversation: conversation_id is required")
	ErrRecordFailed         = errors.New("conversation: failed to record message")
)
