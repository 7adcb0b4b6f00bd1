package repository

import "errors"

var (
	ErrInsertFailed = errors.New("repository: failed to insert prediction")
	ErrListFailed   = errors.New("repository: failed to list predictions")
)
