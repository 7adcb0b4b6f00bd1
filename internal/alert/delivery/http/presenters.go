package http

import (
	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/paginator"
)

type broadcastReq struct {
	Message         string   `json:"message" binding:"required"`
	AlertType       string   `json:"alertType,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	TargetRoles     []string `json:"targetRoles,omitempty"`
	TargetLocations []string `json:"targetLocations,omitempty"`
}

func (r broadcastReq) toInput() alert.DispatchInput {
	return alert.DispatchInput{
		Message:         r.Message,
		AlertType:       r.AlertType,
		Priority:        r.Priority,
		TargetRoles:     r.TargetRoles,
		TargetLocations: r.TargetLocations,
	}
}

type listBroadcastsReq struct {
	paginator.PaginateQuery
}

func (r listBroadcastsReq) toInput() alert.ListBroadcastsInput {
	return alert.ListBroadcastsInput{
		PaginateQuery: r.PaginateQuery,
	}
}

type broadcastResp struct {
	Broadcast model.BroadcastRecord `json:"broadcast"`
}

func (h *handler) newBroadcastResp(o alert.DispatchOutput) broadcastResp {
	return broadcastResp{Broadcast: o.Record}
}

type listBroadcastsResp struct {
	Broadcasts []model.BroadcastRecord     `json:"broadcasts"`
	Paginator  paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListBroadcastsResp(o alert.ListBroadcastsOutput) listBroadcastsResp {
	broadcasts := o.Broadcasts
	if broadcasts == nil {
		broadcasts = []model.BroadcastRecord{}
	}
	return listBroadcastsResp{
		Broadcasts: broadcasts,
		Paginator:  o.Paginator.ToResponse(),
	}
}

type listRecipientsResp struct {
	Recipients []model.Recipient `json:"recipients"`
	Count      int               `json:"count"`
}

func (h *handler) newListRecipientsResp(o alert.ListRecipientsOutput) listRecipientsResp {
	recipients := o.Recipients
	if recipients == nil {
		recipients = []model.Recipient{}
	}
	return listRecipientsResp{Recipients: recipients, Count: len(recipients)}
}
