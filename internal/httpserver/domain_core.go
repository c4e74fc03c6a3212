package httpserver

import (
	"context"

	"chatbot-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// routeRegistrar is implemented by every domain HTTP handler.
type routeRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// domains holds the handlers built once and mounted under every base path.
type domains struct {
	handlers []routeRegistrar
}

func (d domains) register(r *gin.RouterGroup, mw middleware.Middleware) {
	for _, h := range d.handlers {
		h.RegisterRoutes(r, mw)
	}
}

// newDomains wires repositories, usecases and handlers in dependency order.
func (srv HTTPServer) newDomains(ctx context.Context) domains {
	var d domains

	convUC, convHandler := srv.setupConversationDomain(ctx)
	d.handlers = append(d.handlers, convHandler)

	chatUC, chatHandler := srv.setupChatbotDomain(ctx, convUC)
	d.handlers = append(d.handlers, chatHandler)

	if lineHandler := srv.setupLineDomain(ctx, chatUC, convUC); lineHandler != nil {
		d.handlers = append(d.handlers, lineHandler)
	}

	d.handlers = append(d.handlers, srv.setupAdminDomain(ctx))

	return d
}
