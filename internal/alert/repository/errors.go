package repository

import "errors"

var (
	ErrListRecipientsFailed  = errors.New("repository: failed to list recipients")
	ErrUpsertRecipientFailed = errors.New("repository: failed to upsert recipient")
	ErrInsertBroadcastFailed = errors.New("repository: failed to insert broadcast")
	ErrListBroadcastsFailed  = errors.New("repository: failed to list broadcasts")
)
