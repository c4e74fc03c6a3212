package conversation

import (
	"context"

	"chatbot-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// NewConversationID returns a fresh API conversation id: conv_<unix>_<9 hex>.
	NewConversationID() string
	// RecordTurn appends one message atomically. Errors propagate.
	RecordTurn(ctx context.Context, input RecordTurnInput) (model.Message, error)
	// History returns the active window oldest first. Read failures yield an empty slice.
	History(ctx context.Context, conversationID string) []model.Message
	GetConversation(ctx context.Context, conversationID string) (ConversationOutput, error)
	ClearConversation(ctx context.Context, conversationID string) (bool, error)
	Reset(ctx context.Context, conversationID string) int64
	ResetGroup(ctx context.Context, groupID string) int64
	TotalTokens(ctx context.Context, conversationID string) int

	// IsActive reports the pause flag. Unknown ids and read failures are active.
	IsActive(ctx context.Context, conversationID string) bool
	Pause(ctx context.Context, conversationID string) error
	Resume(ctx context.Context, conversationID string) error
	AutoResume(ctx context.Context) (int64, error)
	CleanupIdle(ctx context.Context) (int64, error)

	ListByPlatform(ctx context.Context, platform string, limit int) []model.Conversation
	ListByUser(ctx context.Context, userID string) []model.Conversation
	ListPaused(ctx context.Context, limit int) []model.Conversation
	ListActive(ctx context.Context, input ListActiveInput) (ListActiveOutput, error)

	// IsAuthorized applies the authorized_users membership rule to callerID.
	IsAuthorized(ctx context.Context, callerID string) bool
}
