package http

import (
	"chatbot-srv/internal/linebot"
	"chatbot-srv/internal/middleware"
	"chatbot-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - LINE webhook HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// Config for the webhook endpoint.
type Config struct {
	ChannelSecret   string
	VerifySignature bool
}

type handler struct {
	l   log.Logger
	uc  linebot.UseCase
	cfg Config
	// dispatch runs event processing after the response is written.
	dispatch func(fn func())
}

// New - Factory
func New(l log.Logger, uc linebot.UseCase, cfg Config) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		cfg:      cfg,
		dispatch: func(fn func()) { go fn() },
	}
}
