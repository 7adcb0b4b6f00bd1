package middleware

import (
	"rockguard-srv/config"
	"rockguard-srv/pkg/log"
	"rockguard-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
	}
}
