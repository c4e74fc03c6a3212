package middleware

import (
	"chatbot-srv/pkg/log"
	pkgRedis "chatbot-srv/pkg/redis"
	"chatbot-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	redis      pkgRedis.IRedis
	rateLimit  int
}

func New(l log.Logger, jwtManager scope.Manager, redis pkgRedis.IRedis, rateLimit int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		redis:      redis,
		rateLimit:  rateLimit,
	}
}
