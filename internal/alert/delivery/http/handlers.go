package http

import (
	"rockguard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Broadcast an alert
// @Description Target recipients by role and location and fan the alert out over SMS
// @Tags Alert
// @Accept json
// @Produce json
// @Param body body broadcastReq true "Alert broadcast request"
// @Success 200 {object} broadcastResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/broadcast [post]
func (h *handler) Broadcast(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBroadcastRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Broadcast: processBroadcastRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Dispatch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.Broadcast: usecase Dispatch failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newBroadcastResp(o))
}

// @Summary List broadcast history
// @Description Page through the broadcast log, newest first
// @Tags Alert
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 15)"
// @Success 200 {object} listBroadcastsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/broadcasts [get]
func (h *handler) ListBroadcasts(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListBroadcastsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.ListBroadcasts: processListBroadcastsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListBroadcasts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.ListBroadcasts: usecase ListBroadcasts failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListBroadcastsResp(o))
}

// @Summary List alert recipients
// @Description Return the full recipient roster
// @Tags Alert
// @Accept json
// @Produce json
// @Success 200 {object} listRecipientsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/alerts/recipients [get]
func (h *handler) ListRecipients(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processListRecipientsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.ListRecipients: processListRecipientsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListRecipients(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "alert.delivery.http.ListRecipients: usecase ListRecipients failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListRecipientsResp(o))
}
