package usecase

import (
	"time"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/linebot"
	pkgLine "chatbot-srv/pkg/line"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
	pkgRedis "chatbot-srv/pkg/redis"
)

type implUseCase struct {
	l       log.Logger
	chatUC  chatbot.UseCase
	convUC  conversation.UseCase
	line    pkgLine.ILine
	redis   pkgRedis.IRedis
	storage pkgMinio.FileUploader
	cfg     linebot.Config
	now     func() time.Time
}

// New - Factory function. redis and storage are optional.
func New(
	l log.Logger,
	chatUC chatbot.UseCase,
	convUC conversation.UseCase,
	line pkgLine.ILine,
	redis pkgRedis.IRedis,
	storage pkgMinio.FileUploader,
	cfg linebot.Config,
) linebot.UseCase {
	if cfg.LoadingSeconds <= 0 {
		cfg.LoadingSeconds = linebot.DefaultLoadingSeconds
	}
	return &implUseCase{
		l:       l,
		chatUC:  chatUC,
		convUC:  convUC,
		line:    line,
		redis:   redis,
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}
