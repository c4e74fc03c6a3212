package http

import (
	"chatbot-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/admin")
	g.POST("/login", h.Login)
	g.GET("/me", mw.Auth(), mw.AdminOnly(), h.Me)
}
