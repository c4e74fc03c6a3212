package httpserver

import (
	"context"

	"chatbot-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.redisClient, srv.config.RateLimit.MaxRequestsPerMinute)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	d := srv.newDomains(ctx)
	for _, base := range srv.basePaths {
		r := srv.gin.Group(base)
		if base != "/" {
			r.GET("/health", srv.healthCheck)
		}
		d.register(r, mw)
		srv.l.Infof(ctx, "Routes mounted under %s", base)
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	// The public chat API is called from any origin.
	srv.gin.Use(middleware.CORS())
	srv.l.Infof(context.Background(), "CORS mode: %s (all origins)", srv.environment)

	// Add locale middleware to extract and set locale from request header
	srv.gin.Use(mw.Locale())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
