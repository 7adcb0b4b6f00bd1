package usecase

import (
	"context"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/paginator"
)

// ListBroadcasts pages through the broadcast log, newest first.
func (uc *implUseCase) ListBroadcasts(ctx context.Context, sc model.Scope, input alert.ListBroadcastsInput) (alert.ListBroadcastsOutput, error) {
	input.PaginateQuery.Adjust()

	records, total, err := uc.repo.ListBroadcasts(ctx, repository.ListBroadcastsOptions{
		Limit:  input.PaginateQuery.Limit,
		Offset: input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.ListBroadcasts: failed to list broadcasts: %v", err)
		return alert.ListBroadcastsOutput{}, alert.ErrBroadcastLogFailed
	}

	return alert.ListBroadcastsOutput{
		Broadcasts: records,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(records)),
			PerPage:     input.PaginateQuery.Limit,
			CurrentPage: input.PaginateQuery.Page,
		},
	}, nil
}
