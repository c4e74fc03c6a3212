package http

import (
	"chatbot-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
}
