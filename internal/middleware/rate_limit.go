package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"chatbot-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	rateLimitWindow    = time.Minute
	rateLimitKeyPrefix = "chatbot:ratelimit"
	rateLimitMessage   = "Too many requests. Please try again in a minute."
)

// RateLimit caps requests per client per minute using a Redis fixed window.
// The client is the remote IP; conversation ids are chosen by the caller and cannot key the bucket.
// Redis failures let the request through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.redis == nil || m.rateLimit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		slot := time.Now().Unix() / int64(rateLimitWindow.Seconds())
		key := fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, c.ClientIP(), slot)

		count, err := m.redis.Incr(ctx, key)
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: Incr failed: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := m.redis.Expire(ctx, key, rateLimitWindow); err != nil {
				m.l.Warnf(ctx, "middleware.RateLimit: Expire failed: %v", err)
			}
		}

		remaining := int64(m.rateLimit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("RateLimit-Limit", strconv.Itoa(m.rateLimit))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(m.rateLimit) {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
			response.Public(c, http.StatusTooManyRequests, response.PublicResp{Success: false, Error: rateLimitMessage})
			c.Abort()
			return
		}

		c.Next()
	}
}
