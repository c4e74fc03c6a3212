package httpserver

import (
	"context"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/linebot"
	linebotHTTP "chatbot-srv/internal/linebot/delivery/http"
	linebotUsecase "chatbot-srv/internal/linebot/usecase"
)

// setupLineDomain returns nil when no LINE client is configured.
func (srv HTTPServer) setupLineDomain(ctx context.Context, chatUC chatbot.UseCase, convUC conversation.UseCase) routeRegistrar {
	if srv.lineClient == nil {
		srv.l.Warnf(ctx, "LINE channel access token not set, webhook disabled")
		return nil
	}

	cfg := linebot.Config{TriggerPrefix: srv.config.Line.TriggerPrefix}
	if srv.minio != nil {
		cfg.ImageBucket = srv.config.MinIO.Bucket
	}

	uc := linebotUsecase.New(srv.l, chatUC, convUC, srv.lineClient, srv.redisClient, srv.minio, cfg)

	if !srv.config.Line.VerifySignature {
		srv.l.Warnf(ctx, "LINE signature verification is disabled")
	}
	handler := linebotHTTP.New(srv.l, uc, linebotHTTP.Config{
		ChannelSecret:   srv.config.Line.ChannelSecret,
		VerifySignature: srv.config.Line.VerifySignature,
	})

	srv.l.Infof(ctx, "LINE domain registered")
	return handler
}
