package alert

import (
	"context"

	"rockguard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch targets, fans out and records one alert broadcast.
	Dispatch(ctx context.Context, sc model.Scope, input DispatchInput) (DispatchOutput, error)
	// ListBroadcasts pages through the broadcast log, newest first.
	ListBroadcasts(ctx context.Context, sc model.Scope, input ListBroadcastsInput) (ListBroadcastsOutput, error)
	// ListRecipients returns the full roster.
	ListRecipients(ctx context.Context, sc model.Scope) (ListRecipientsOutput, error)
}
