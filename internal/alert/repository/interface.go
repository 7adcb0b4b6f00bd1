package repository

import (
	"context"

	"rockguard-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListRecipients returns roster entries matching opt, contacts decrypted.
	ListRecipients(ctx context.Context, opt ListRecipientsOptions) ([]model.Recipient, error)
	// UpsertRecipient writes one roster entry, encrypting the contact.
	UpsertRecipient(ctx context.Context, recipient model.Recipient) error
	// InsertBroadcast appends one immutable record to the broadcast log.
	InsertBroadcast(ctx context.Context, record model.BroadcastRecord) error
	// ListBroadcasts returns log entries newest first.
	ListBroadcasts(ctx context.Context, opt ListBroadcastsOptions) ([]model.BroadcastRecord, int64, error)
}
