package http

import (
	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/middleware"
	"chatbot-srv/pkg/discord"
	"chatbot-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - chatbot HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      chatbot.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc chatbot.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
