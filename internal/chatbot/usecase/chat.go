package usecase

import (
	"context"
	"fmt"
	"strings"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/locale"
)

// Chat serves the JSON API. API callers are never authorized for quotations.
func (uc *implUseCase) Chat(ctx context.Context, input chatbot.ChatInput) (chatbot.ChatOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chatbot.ChatOutput{}, chatbot.ErrMessageRequired
	}

	convID := strings.TrimSpace(input.ConversationID)
	if convID == "" {
		convID = uc.convUC.NewConversationID()
	}
	out := chatbot.ChatOutput{ConversationID: convID, Language: locale.Detect(msg)}

	history := uc.convUC.History(ctx, convID)
	reply, replyErr := uc.Reply(ctx, chatbot.ReplyInput{Message: msg, History: history})
	if reply.Language != "" {
		out.Language = reply.Language
	}

	if err := uc.RecordExchange(ctx, chatbot.ExchangeInput{
		ConversationID: convID,
		UserContent:    msg,
		Reply:          reply,
		ReplyErr:       replyErr,
	}); err != nil {
		uc.l.Errorf(ctx, "chatbot.usecase.Chat: RecordExchange failed: %v", err)
		return out, err
	}

	if replyErr != nil {
		return out, replyErr
	}
	out.Response = reply.Text
	return out, nil
}

func (uc *implUseCase) RecordExchange(ctx context.Context, input chatbot.ExchangeInput) error {
	if _, err := uc.convUC.RecordTurn(ctx, conversation.RecordTurnInput{
		ConversationID: input.ConversationID,
		Role:           model.RoleUser,
		Content:        input.UserContent,
		SearchCriteria: input.Reply.SearchCriteria,
	}); err != nil {
		return fmt.Errorf("%w: %v", chatbot.ErrRecordFailed, err)
	}

	if input.ReplyErr == nil {
		if _, err := uc.convUC.RecordTurn(ctx, conversation.RecordTurnInput{
			ConversationID: input.ConversationID,
			Role:           model.RoleAssistant,
			Content:        input.Reply.Text,
			TokensUsed:     input.Reply.TokensUsed,
		}); err != nil {
			return fmt.Errorf("%w: %v", chatbot.ErrRecordFailed, err)
		}
	}

	uc.publishTurn(ctx, input)
	return nil
}

// publishTurn is best effort. A failed publish is logged only.
func (uc *implUseCase) publishTurn(ctx context.Context, input chatbot.ExchangeInput) {
	if uc.producer == nil {
		return
	}
	platform := model.PlatformAPI
	if strings.HasPrefix(input.ConversationID, model.LinePrefix) {
		platform = model.PlatformLine
	}
	event := chatbot.TurnCompleted{
		ConversationID: input.ConversationID,
		Platform:       platform,
		Language:       input.Reply.Language,
		TokensUsed:     input.Reply.TokensUsed,
		SearchCriteria: input.Reply.SearchCriteria,
		Success:        input.ReplyErr == nil,
		CompletedAt:    uc.now(),
	}
	if input.ReplyErr != nil {
		event.Error = input.ReplyErr.Error()
	}
	if err := uc.producer.PublishTurnCompleted(ctx, event); err != nil {
		uc.l.Warnf(ctx, "chatbot.usecase.publishTurn: PublishTurnCompleted failed: %v", err)
	}
}
