package httpserver

import (
	"context"

	"chatbot-srv/internal/admin"
	adminHTTP "chatbot-srv/internal/admin/delivery/http"
	adminUsecase "chatbot-srv/internal/admin/usecase"
)

func (srv HTTPServer) setupAdminDomain(ctx context.Context) routeRegistrar {
	uc := adminUsecase.New(srv.l, srv.jwtManager, admin.Config{
		Username:     srv.config.Admin.Username,
		PasswordHash: srv.config.Admin.PasswordHash,
	})
	if srv.jwtManager == nil {
		srv.l.Warnf(ctx, "Admin API disabled (no JWT secret)")
	}

	handler := adminHTTP.New(srv.l, uc, srv.discord)

	srv.l.Infof(ctx, "Admin domain registered")
	return handler
}
