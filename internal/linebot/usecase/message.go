package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/linebot"
	"chatbot-srv/internal/model"
	pkgLine "chatbot-srv/pkg/line"
	pkgMinio "chatbot-srv/pkg/minio"
)

func (uc *implUseCase) handleText(ctx context.Context, event pkgLine.Event, t target, history []model.Message, authorized bool) error {
	raw := event.Message.Text
	msg := stripTrigger(raw, uc.cfg.TriggerPrefix)
	if msg == "" {
		return nil
	}

	reply, replyErr := uc.chatUC.Reply(ctx, chatbot.ReplyInput{
		Message:    msg,
		History:    history,
		Authorized: authorized,
	})
	return uc.finishTurn(ctx, t, raw, reply, replyErr)
}

func (uc *implUseCase) handleImage(ctx context.Context, event pkgLine.Event, t target, history []model.Message, authorized bool) error {
	messageID := event.Message.ID
	if messageID == "" {
		return nil
	}

	data, contentType, err := uc.line.Content(ctx, messageID)
	if err == nil && len(data) == 0 {
		err = linebot.ErrEmptyContent
	}
	if err != nil {
		uc.l.Errorf(ctx, "linebot.usecase.handleImage: Content %s failed: %v", messageID, err)
		uc.push(ctx, t.replyTo, linebot.MsgImageFailed)
		return nil
	}
	if !strings.HasPrefix(contentType, "image/") {
		contentType = linebot.DefaultImageMimeType
	}

	uc.archiveImage(ctx, t, messageID, data, contentType)

	reply, replyErr := uc.chatUC.ReplyToImage(ctx, chatbot.ImageInput{
		Data:       data,
		MimeType:   contentType,
		History:    history,
		Authorized: authorized,
	})
	return uc.finishTurn(ctx, t, linebot.MarkerImage, reply, replyErr)
}

// finishTurn records the exchange and delivers the reply, or an apology when the turn failed.
func (uc *implUseCase) finishTurn(ctx context.Context, t target, userContent string, reply chatbot.ReplyOutput, replyErr error) error {
	if err := uc.chatUC.RecordExchange(ctx, chatbot.ExchangeInput{
		ConversationID: t.conversationID,
		UserContent:    userContent,
		Reply:          reply,
		ReplyErr:       replyErr,
	}); err != nil {
		return err
	}

	if replyErr != nil {
		uc.l.Errorf(ctx, "linebot.usecase.finishTurn: chatbot failed for %s: %v", t.conversationID, replyErr)
		uc.push(ctx, t.replyTo, apology(reply, replyErr))
		return nil
	}

	for i, chunk := range pkgLine.SplitMessage(reply.Text, pkgLine.MaxMessageLength) {
		if err := uc.line.PushText(ctx, t.replyTo, chunk); err != nil {
			uc.l.Errorf(ctx, "linebot.usecase.finishTurn: push message %d failed: %v", i, err)
		}
	}
	return nil
}

func apology(reply chatbot.ReplyOutput, err error) string {
	switch {
	case chatbot.IsRateLimited(err):
		return linebot.MsgRateLimited
	case errors.Is(err, chatbot.ErrTooManyFunctionCalls) && reply.Text != "":
		return reply.Text
	default:
		return linebot.MsgSystemError
	}
}

// archiveImage keeps a copy of the image. Failures are logged only.
func (uc *implUseCase) archiveImage(ctx context.Context, t target, messageID string, data []byte, contentType string) {
	if uc.storage == nil || uc.cfg.ImageBucket == "" {
		return
	}
	name := messageID + imageExtension(contentType)
	_, err := uc.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   uc.cfg.ImageBucket,
		ObjectName:   conversation.ImagePrefix(t.conversationID) + uc.now().Format("2006-01-02") + "/" + name,
		OriginalName: name,
		Reader:       bytes.NewReader(data),
		Size:         int64(len(data)),
		ContentType:  contentType,
		Metadata: map[string]string{
			"conversation-id": t.conversationID,
			"user-id":         t.userID,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "linebot.usecase.archiveImage: UploadFile failed: %v", err)
	}
}

func imageExtension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
