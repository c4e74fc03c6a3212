package usecase

import (
	"context"
	"errors"
	"time"

	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/paginator"
)

// GetConversation - conversation + active history
func (uc *implUseCase) GetConversation(ctx context.Context, conversationID string) (conversation.ConversationOutput, error) {
	conv, err := uc.repo.GetConversation(ctx, conversationID)
	if errors.Is(err, repository.ErrNotFound) {
		return conversation.ConversationOutput{}, conversation.ErrConversationNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.GetConversation: repo.GetConversation failed: %v", err)
		return conversation.ConversationOutput{}, err
	}

	return conversation.ConversationOutput{
		Conversation: conv,
		Messages:     uc.History(ctx, conversationID),
		TotalTokens:  uc.TotalTokens(ctx, conversationID),
	}, nil
}

// ClearConversation - hard delete; false when nothing was deleted
func (uc *implUseCase) ClearConversation(ctx context.Context, conversationID string) (bool, error) {
	deleted, err := uc.repo.DeleteConversation(ctx, conversationID)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.ClearConversation: repo.DeleteConversation failed: %v", err)
		return false, err
	}
	if deleted {
		uc.deleteImages(ctx, conversationID)
	}
	return deleted, nil
}

func (uc *implUseCase) ListByPlatform(ctx context.Context, platform string, limit int) []model.Conversation {
	if limit <= 0 {
		limit = conversation.DefaultListLimit
	}
	return uc.list(ctx, repository.ListConversationsOptions{Platform: platform, Limit: limit})
}

func (uc *implUseCase) ListByUser(ctx context.Context, userID string) []model.Conversation {
	return uc.list(ctx, repository.ListConversationsOptions{UserID: userID})
}

func (uc *implUseCase) list(ctx context.Context, opt repository.ListConversationsOptions) []model.Conversation {
	convs, err := uc.repo.ListConversations(ctx, opt)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.list: repo.ListConversations failed: %v", err)
		return []model.Conversation{}
	}
	return convs
}

// ListPaused - empty on read failure
func (uc *implUseCase) ListPaused(ctx context.Context, limit int) []model.Conversation {
	if limit <= 0 {
		limit = conversation.DefaultListLimit
	}
	convs, err := uc.repo.ListPausedConversations(ctx, limit)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.ListPaused: repo.ListPausedConversations failed: %v", err)
		return []model.Conversation{}
	}
	return convs
}

// ListActive - conversations active within the last input.Days days, paginated
func (uc *implUseCase) ListActive(ctx context.Context, input conversation.ListActiveInput) (conversation.ListActiveOutput, error) {
	if input.Days <= 0 {
		input.Days = conversation.DefaultActiveDays
	}
	input.Paginate.Adjust()

	since := uc.now().Add(-time.Duration(input.Days) * 24 * time.Hour)
	out := conversation.ListActiveOutput{
		Conversations: []model.Conversation{},
		Paginator: paginator.Paginator{
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
	}

	total, err := uc.repo.CountActiveConversations(ctx, since)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.ListActive: repo.CountActiveConversations failed: %v", err)
		return out, nil
	}
	out.Paginator.Total = int64(total)

	convs, err := uc.repo.ListActiveConversations(ctx, repository.ListActiveOptions{
		Since:  since,
		Limit:  int(input.Paginate.Limit),
		Offset: int(input.Paginate.Offset()),
	})
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.ListActive: repo.ListActiveConversations failed: %v", err)
		return out, nil
	}
	if convs != nil {
		out.Conversations = convs
	}
	out.Paginator.Count = int64(len(out.Conversations))
	return out, nil
}

// IsAuthorized - false on read failure
func (uc *implUseCase) IsAuthorized(ctx context.Context, callerID string) bool {
	if callerID == "" {
		return false
	}
	candidates, err := uc.repo.ListAuthorizedCandidates(ctx, callerID)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.IsAuthorized: repo.ListAuthorizedCandidates failed: %v", err)
		return false
	}
	for _, stored := range candidates {
		if matchesAuthorized(callerID, stored) {
			return true
		}
	}
	return false
}
