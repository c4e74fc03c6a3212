package usecase

import (
	"context"

	"chatbot-srv/internal/linebot"
	pkgLine "chatbot-srv/pkg/line"
)

func (uc *implUseCase) Process(ctx context.Context, payload pkgLine.WebhookPayload) {
	if len(payload.Events) == 0 {
		return
	}

	authorized := uc.senderAuthorized(ctx, payload.Events)

	for _, event := range payload.Events {
		if uc.seen(ctx, event) {
			uc.l.Infof(ctx, "linebot.usecase.Process: skipping redelivered event %s", event.WebhookEventID)
			continue
		}
		if err := uc.handleEvent(ctx, event, payload.Destination, authorized); err != nil {
			uc.l.Errorf(ctx, "linebot.usecase.Process: handleEvent failed: %v", err)
			if event.Source.UserID != "" {
				uc.push(ctx, event.Source.UserID, linebot.MsgSystemError)
			}
		}
	}
}

// senderAuthorized checks the first event that carries a user id.
func (uc *implUseCase) senderAuthorized(ctx context.Context, events []pkgLine.Event) bool {
	for _, event := range events {
		if event.Source.UserID != "" {
			return uc.convUC.IsAuthorized(ctx, event.Source.UserID)
		}
	}
	return false
}

// seen records the event id and reports whether it was already recorded.
// Without Redis, or on Redis errors, every event is new.
func (uc *implUseCase) seen(ctx context.Context, event pkgLine.Event) bool {
	if uc.redis == nil || event.WebhookEventID == "" {
		return false
	}
	set, err := uc.redis.SetNX(ctx, linebot.EventDedupeKeyPrefix+event.WebhookEventID, 1, linebot.EventDedupeTTL)
	if err != nil {
		uc.l.Warnf(ctx, "linebot.usecase.seen: SetNX failed: %v", err)
		return false
	}
	return !set
}

func (uc *implUseCase) handleEvent(ctx context.Context, event pkgLine.Event, botUserID string, authorized bool) error {
	t, ok := routeEvent(event, botUserID)
	if !ok {
		return nil
	}

	if t.messageType == pkgLine.MessageTypeText {
		if cmd := parseCommand(commandText(event.Message)); cmd != linebot.CommandNone {
			return uc.handleCommand(ctx, cmd, t)
		}
	}

	if !uc.convUC.IsActive(ctx, t.conversationID) {
		uc.l.Infof(ctx, "linebot.usecase.handleEvent: chatbot paused for %s", t.conversationID)
		return nil
	}

	history := uc.convUC.History(ctx, t.conversationID)

	// LINE shows the loading animation in 1:1 chats only.
	if t.sourceType == pkgLine.SourceTypeUser {
		if err := uc.line.ShowLoading(ctx, t.replyTo, uc.cfg.LoadingSeconds); err != nil {
			uc.l.Warnf(ctx, "linebot.usecase.handleEvent: ShowLoading failed: %v", err)
		}
	}

	if t.messageType == pkgLine.MessageTypeImage {
		return uc.handleImage(ctx, event, t, history, authorized)
	}
	return uc.handleText(ctx, event, t, history, authorized)
}

func (uc *implUseCase) push(ctx context.Context, to, text string) {
	if err := uc.line.PushText(ctx, to, text); err != nil {
		uc.l.Errorf(ctx, "linebot.usecase.push: PushText failed: %v", err)
	}
}
