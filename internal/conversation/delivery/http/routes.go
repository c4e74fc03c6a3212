package http

import (
	"chatbot-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/conversation/:conversation_id", h.GetConversation)
	r.DELETE("/conversation/:conversation_id", h.ClearConversation)

	admin := r.Group("/admin/conversations")
	admin.Use(mw.Auth(), mw.AdminOnly())
	{
		admin.GET("/paused", h.ListPaused)
		admin.GET("/active", h.ListActive)
		admin.POST("/:conversation_id/pause", h.Pause)
		admin.POST("/:conversation_id/resume", h.Resume)
	}
}
