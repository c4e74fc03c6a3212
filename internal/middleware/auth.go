package middleware

import (
	"net/http"

	pkgErrors "chatbot-srv/pkg/errors"
	"chatbot-srv/pkg/response"
	"chatbot-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errForbidden = pkgErrors.NewHTTPError(http.StatusForbidden, "Forbidden")

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtManager == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Support both "Bearer <token>" and plain token
		tokenString := c.GetHeader("Authorization")
		if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
			tokenString = tokenString[7:]
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminOnly must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !scope.GetScopeFromContext(c.Request.Context()).IsAdmin() {
			response.Error(c, errForbidden, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
