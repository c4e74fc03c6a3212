package repository

import (
	"context"
	"time"

	"chatbot-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ConversationRepository
	MessageRepository
	AuthorizedUserRepository

	// RecordTurn upserts the conversation, appends one message and trims history in a single transaction.
	RecordTurn(ctx context.Context, opt RecordTurnOptions) (model.Message, error)
}

// ConversationRepository - conversation rows and the pause flag
type ConversationRepository interface {
	GetConversation(ctx context.Context, id string) (model.Conversation, error)
	DeleteConversation(ctx context.Context, id string) (bool, error)
	// DeleteIdleConversations returns the ids of the deleted conversations.
	DeleteIdleConversations(ctx context.Context, idleFor time.Duration) ([]string, error)
	ListConversations(ctx context.Context, opt ListConversationsOptions) ([]model.Conversation, error)
	ListPausedConversations(ctx context.Context, limit int) ([]model.Conversation, error)
	ListActiveConversations(ctx context.Context, opt ListActiveOptions) ([]model.Conversation, error)
	CountActiveConversations(ctx context.Context, since time.Time) (int, error)
	IsChatbotActive(ctx context.Context, id string) (bool, error)
	SetChatbotActive(ctx context.Context, opt SetActiveOptions) error
	ResumePausedBefore(ctx context.Context, before time.Time) (int64, error)
}

// MessageRepository - message history
type MessageRepository interface {
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.Message, error)
	SumTokens(ctx context.Context, conversationID string) (int, error)
	DeactivateMessages(ctx context.Context, conversationID string) (int64, error)
	DeactivateMessagesByPrefix(ctx context.Context, prefix string) (int64, error)
}

// AuthorizedUserRepository - quotation allow-list
type AuthorizedUserRepository interface {
	// ListAuthorizedCandidates returns stored ids that occur anywhere inside callerID.
	ListAuthorizedCandidates(ctx context.Context, callerID string) ([]string, error)
}

// ImageRepository - images archived for a conversation in object storage
type ImageRepository interface {
	DeleteImages(ctx context.Context, conversationID string) (int, error)
}
