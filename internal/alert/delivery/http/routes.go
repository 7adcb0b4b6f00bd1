package http

import (
	"rockguard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/alerts")
	api.Use(mw.Auth())
	{
		api.POST("/broadcast", h.Broadcast)
		api.GET("/broadcasts", h.ListBroadcasts)
		api.GET("/recipients", h.ListRecipients)
	}
}
