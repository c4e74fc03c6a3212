package usecase

import (
	"context"
	"errors"

	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/conversation/repository"
)

// IsActive - fail-open: unknown conversations and read errors count as active
func (uc *implUseCase) IsActive(ctx context.Context, conversationID string) bool {
	active, err := uc.repo.IsChatbotActive(ctx, conversationID)
	if errors.Is(err, repository.ErrNotFound) {
		return true
	}
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.IsActive: repo.IsChatbotActive failed: %v", err)
		return true
	}
	return active
}

func (uc *implUseCase) Pause(ctx context.Context, conversationID string) error {
	return uc.setActive(ctx, conversationID, false)
}

func (uc *implUseCase) Resume(ctx context.Context, conversationID string) error {
	return uc.setActive(ctx, conversationID, true)
}

func (uc *implUseCase) setActive(ctx context.Context, conversationID string, active bool) error {
	if conversationID == "" {
		return conversation.ErrConversationIDEmpty
	}
	err := uc.repo.SetChatbotActive(ctx, repository.SetActiveOptions{
		ConversationID:   conversationID,
		Platform:         platformOf(conversationID),
		UserID:           userIDOf(conversationID),
		MaxMessagesLimit: uc.cfg.MaxMessages,
		Active:           active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.setActive: repo.SetChatbotActive failed: %v", err)
		return err
	}
	uc.l.Infof(ctx, "conversation.usecase.setActive: %s active=%t", conversationID, active)
	return nil
}

// AutoResume - reactivate conversations paused longer than the configured threshold
func (uc *implUseCase) AutoResume(ctx context.Context) (int64, error) {
	n, err := uc.repo.ResumePausedBefore(ctx, uc.now().Add(-uc.cfg.AutoResumeAfter))
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.AutoResume: repo.ResumePausedBefore failed: %v", err)
		return 0, err
	}
	if n > 0 {
		uc.l.Infof(ctx, "conversation.usecase.AutoResume: resumed %d conversations after %s", n, uc.cfg.AutoResumeAfter)
	}
	return n, nil
}

// CleanupIdle - delete conversations idle longer than the configured threshold
func (uc *implUseCase) CleanupIdle(ctx context.Context) (int64, error) {
	ids, err := uc.repo.DeleteIdleConversations(ctx, uc.cfg.IdleCleanup)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.CleanupIdle: repo.DeleteIdleConversations failed: %v", err)
		return 0, err
	}
	uc.deleteImages(ctx, ids...)
	if len(ids) > 0 {
		uc.l.Infof(ctx, "conversation.usecase.CleanupIdle: cleaned up %d conversations", len(ids))
	}
	return int64(len(ids)), nil
}
