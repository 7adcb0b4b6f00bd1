package alert

import (
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/paginator"
)

type DispatchInput struct {
	Message         string
	AlertType       string
	Priority        string
	TargetRoles     []string
	TargetLocations []string
}

type DispatchOutput struct {
	Record model.BroadcastRecord
}

type ListBroadcastsInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListBroadcastsOutput struct {
	Broadcasts []model.BroadcastRecord
	Paginator  paginator.Paginator
}

type ListRecipientsOutput struct {
	Recipients []model.Recipient
}
