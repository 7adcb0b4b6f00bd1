package http

import (
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processBroadcastRequest(c *gin.Context) (broadcastReq, model.Scope, error) {
	var req broadcastReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListBroadcastsRequest(c *gin.Context) (listBroadcastsReq, model.Scope, error) {
	var req listBroadcastsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListRecipientsRequest(c *gin.Context) (model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return sc, nil
}
