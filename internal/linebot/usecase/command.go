package usecase

import (
	"context"

	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/linebot"
	"chatbot-srv/internal/model"
)

// handleCommand answers pause, resume and reset. Replies always go to the user.
func (uc *implUseCase) handleCommand(ctx context.Context, cmd linebot.Command, t target) error {
	switch cmd {
	case linebot.CommandPause:
		return uc.pause(ctx, t)
	case linebot.CommandResume:
		return uc.resume(ctx, t)
	case linebot.CommandReset:
		uc.reset(ctx, t)
	}
	return nil
}

func (uc *implUseCase) pause(ctx context.Context, t target) error {
	if !uc.convUC.IsActive(ctx, t.conversationID) {
		uc.push(ctx, t.userID, linebot.MsgAlreadyPaused)
		return nil
	}

	if err := uc.convUC.Pause(ctx, t.conversationID); err != nil {
		return err
	}
	uc.recordMarker(ctx, t.conversationID, model.RoleUser, linebot.MarkerPause)
	uc.push(ctx, t.userID, linebot.MsgPaused)

	uc.l.Infof(ctx, "linebot.usecase.pause: chatbot paused by user request: %s", t.conversationID)
	return nil
}

func (uc *implUseCase) resume(ctx context.Context, t target) error {
	if uc.convUC.IsActive(ctx, t.conversationID) {
		uc.push(ctx, t.userID, linebot.MsgAlreadyActive)
		return nil
	}

	if err := uc.convUC.Resume(ctx, t.conversationID); err != nil {
		return err
	}
	uc.recordMarker(ctx, t.conversationID, model.RoleAssistant, linebot.MarkerResume)
	uc.push(ctx, t.userID, linebot.MsgResumed)

	uc.l.Infof(ctx, "linebot.usecase.resume: chatbot resumed: %s", t.conversationID)
	return nil
}

// reset deactivates history. In a group every member's conversation is reset.
func (uc *implUseCase) reset(ctx context.Context, t target) {
	var n int64
	if t.groupID != "" {
		n = uc.convUC.ResetGroup(ctx, t.groupID)
	} else {
		n = uc.convUC.Reset(ctx, t.conversationID)
	}
	uc.push(ctx, t.userID, linebot.MsgReset)

	uc.l.Infof(ctx, "linebot.usecase.reset: %d messages deactivated for %s", n, t.conversationID)
}

func (uc *implUseCase) recordMarker(ctx context.Context, conversationID, role, content string) {
	if _, err := uc.convUC.RecordTurn(ctx, conversation.RecordTurnInput{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	}); err != nil {
		uc.l.Errorf(ctx, "linebot.usecase.recordMarker: RecordTurn failed: %v", err)
	}
}
