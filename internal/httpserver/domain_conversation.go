package httpserver

import (
	"context"
	"time"

	"chatbot-srv/internal/conversation"
	convHTTP "chatbot-srv/internal/conversation/delivery/http"
	convMinio "chatbot-srv/internal/conversation/repository/minio"
	convPostgre "chatbot-srv/internal/conversation/repository/postgre"
	convUsecase "chatbot-srv/internal/conversation/usecase"
)

func (srv HTTPServer) setupConversationDomain(ctx context.Context) (conversation.UseCase, routeRegistrar) {
	repo := convPostgre.New(srv.postgresDB, srv.l)

	var opts []convUsecase.Option
	if srv.minio != nil {
		opts = append(opts, convUsecase.WithImages(convMinio.New(srv.minio, srv.config.MinIO.Bucket, srv.l)))
	}

	uc := convUsecase.New(repo, conversation.Config{
		MaxMessages:     srv.config.Chat.MaxMessages,
		RetentionDays:   srv.config.Chat.RetentionDays,
		AutoResumeAfter: srv.config.Chat.AutoResumeAfter(),
		IdleCleanup:     time.Duration(srv.config.Chat.IdleCleanupHours) * time.Hour,
	}, srv.l, opts...)

	handler := convHTTP.New(srv.l, uc, srv.discord)

	srv.l.Infof(ctx, "Conversation domain registered")
	return uc, handler
}
