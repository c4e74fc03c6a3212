package usecase

import (
	"chatbot-srv/internal/admin"
	"chatbot-srv/pkg/jwt"
	"chatbot-srv/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	jwtManager jwt.IManager
	cfg        admin.Config
}

// New - Factory function. A nil jwtManager disables login.
func New(l log.Logger, jwtManager jwt.IManager, cfg admin.Config) admin.UseCase {
	return &implUseCase{
		l:          l,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}
