package chatbot

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one API turn and records it. ConversationID and Language are set even on failure.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// Reply runs the function-calling loop for one text message without touching storage.
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)
	// ReplyToImage runs the function-calling loop for one image message.
	ReplyToImage(ctx context.Context, input ImageInput) (ReplyOutput, error)
	// RecordExchange stores the user message and, when replyErr is nil, the assistant reply,
	// then publishes the turn event.
	RecordExchange(ctx context.Context, input ExchangeInput) error
	// RefreshFiles re-uploads the catalog file regardless of the local cache.
	RefreshFiles(ctx context.Context) error
}

// Producer publishes turn analytics.
type Producer interface {
	PublishTurnCompleted(ctx context.Context, event TurnCompleted) error
}
