package scheduler

import (
	"context"
	"time"

	"chatbot-srv/internal/chatbot"
	chatbotUsecase "chatbot-srv/internal/chatbot/usecase"
	"chatbot-srv/internal/conversation"
	convMinio "chatbot-srv/internal/conversation/repository/minio"
	convPostgre "chatbot-srv/internal/conversation/repository/postgre"
	convUsecase "chatbot-srv/internal/conversation/usecase"
)

// setupDomains initializes the usecases the jobs drive.
func (srv *SchedulerServer) setupDomains(ctx context.Context) jobs {
	repo := convPostgre.New(srv.postgresDB, srv.l)

	var opts []convUsecase.Option
	if srv.minio != nil {
		opts = append(opts, convUsecase.WithImages(convMinio.New(srv.minio, srv.cfg.MinIO.Bucket, srv.l)))
	}
	convUC := convUsecase.New(repo, conversation.Config{
		MaxMessages:     srv.cfg.Chat.MaxMessages,
		RetentionDays:   srv.cfg.Chat.RetentionDays,
		AutoResumeAfter: srv.cfg.Chat.AutoResumeAfter(),
		IdleCleanup:     time.Duration(srv.cfg.Chat.IdleCleanupHours) * time.Hour,
	}, srv.l, opts...)

	chatUC := chatbotUsecase.New(srv.l, srv.geminiClient, convUC, chatbot.Config{
		SystemPromptPath: srv.cfg.Chat.SystemPromptPath,
		CatalogMaxAge:    srv.cfg.Chat.FileCacheMaxAge(),
	},
		chatbotUsecase.WithProduct(srv.productClient),
		chatbotUsecase.WithFileManager(srv.fileManager),
	)

	srv.l.Infof(ctx, "Scheduler domains initialized")

	return jobs{
		l:       srv.l,
		convUC:  convUC,
		chatUC:  chatUC,
		discord: srv.discord,
		timeout: defaultJobTimeout,
	}
}
