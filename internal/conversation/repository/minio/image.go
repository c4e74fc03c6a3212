package minio

import (
	"context"
	"fmt"

	"chatbot-srv/internal/conversation"
)

// DeleteImages - remove every image archived for the conversation
func (r *implRepository) DeleteImages(ctx context.Context, conversationID string) (int, error) {
	n, err := r.storage.DeletePrefix(ctx, r.bucket, conversation.ImagePrefix(conversationID))
	if err != nil {
		return n, fmt.Errorf("DeleteImages: %w", err)
	}
	return n, nil
}
