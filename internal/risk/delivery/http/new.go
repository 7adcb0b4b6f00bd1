package http

import (
	"rockguard-srv/internal/middleware"
	"rockguard-srv/internal/risk"
	"rockguard-srv/pkg/discord"
	"rockguard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the risk HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      risk.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc risk.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
