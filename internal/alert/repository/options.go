package repository

// ListRecipientsOptions filters the roster. Empty fields match everything.
type ListRecipientsOptions struct {
	Roles []string
}

// ListBroadcastsOptions pages the broadcast log.
type ListBroadcastsOptions struct {
	Limit  int64
	Offset int64
}
