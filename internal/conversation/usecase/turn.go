package usecase

import (
	"context"
	"fmt"

	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/internal/model"
)

// RecordTurn - upsert conversation + append message in one transaction
func (uc *implUseCase) RecordTurn(ctx context.Context, input conversation.RecordTurnInput) (model.Message, error) {
	if input.ConversationID == "" {
		return model.Message{}, conversation.ErrConversationIDEmpty
	}

	msg, err := uc.repo.RecordTurn(ctx, repository.RecordTurnOptions{
		ConversationID:   input.ConversationID,
		Platform:         platformOf(input.ConversationID),
		UserID:           userIDOf(input.ConversationID),
		MaxMessagesLimit: uc.cfg.MaxMessages,
		RetentionDays:    uc.cfg.RetentionDays,
		Role:             input.Role,
		Content:          input.Content,
		TokensUsed:       input.TokensUsed,
		SearchCriteria:   input.SearchCriteria,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.RecordTurn: repo.RecordTurn failed: %v", err)
		return model.Message{}, fmt.Errorf("%w: %v", conversation.ErrRecordFailed, err)
	}
	return msg, nil
}

// History - active window, empty on read failure
func (uc *implUseCase) History(ctx context.Context, conversationID string) []model.Message {
	msgs, err := uc.repo.ListHistory(ctx, repository.ListHistoryOptions{
		ConversationID: conversationID,
		Limit:          uc.cfg.MaxMessages,
	})
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.History: repo.ListHistory failed: %v", err)
		return []model.Message{}
	}
	return msgs
}

// Reset - soft-deactivate one conversation's messages
func (uc *implUseCase) Reset(ctx context.Context, conversationID string) int64 {
	n, err := uc.repo.DeactivateMessages(ctx, conversationID)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Reset: repo.DeactivateMessages failed: %v", err)
		return 0
	}
	uc.l.Infof(ctx, "conversation.usecase.Reset: %s reset (%d messages deactivated)", conversationID, n)
	return n
}

// ResetGroup - soft-deactivate every member conversation of a LINE group
func (uc *implUseCase) ResetGroup(ctx context.Context, groupID string) int64 {
	n, err := uc.repo.DeactivateMessagesByPrefix(ctx, groupPrefixOf(groupID))
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.ResetGroup: repo.DeactivateMessagesByPrefix failed: %v", err)
		return 0
	}
	uc.l.Infof(ctx, "conversation.usecase.ResetGroup: group %s reset (%d messages deactivated)", groupID, n)
	return n
}

// TotalTokens - 0 on read failure
func (uc *implUseCase) TotalTokens(ctx context.Context, conversationID string) int {
	total, err := uc.repo.SumTokens(ctx, conversationID)
	if err != nil {
		uc.l.Warnf(ctx, "conversation.usecase.TotalTokens: repo.SumTokens failed: %v", err)
		return 0
	}
	return total
}
