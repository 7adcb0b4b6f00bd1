package usecase

import (
	"context"
	"errors"
	"testing"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/paginator"
)

func TestListBroadcasts(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("defaults are applied to an empty query", func(t *testing.T) {
		repo := &fakeAlertRepo{
			broadcasts: []model.BroadcastRecord{{ID: "broadcast_2"}, {ID: "broadcast_1"}},
			total:      2,
		}
		uc := New(repo, &fakeSMS{maxBatch: 50}, testLogger(), Config{})

		o, err := uc.ListBroadcasts(context.Background(), sc, alert.ListBroadcastsInput{})
		if err != nil {
			t.Fatalf("ListBroadcasts failed: %v", err)
		}

		if repo.lastListOpt.Limit != paginator.DefaultLimit {
			t.Errorf("limit: got %d, want %d", repo.lastListOpt.Limit, paginator.DefaultLimit)
		}
		if repo.lastListOpt.Offset != 0 {
			t.Errorf("offset: got %d, want 0", repo.lastListOpt.Offset)
		}
		if o.Paginator.CurrentPage != 1 || o.Paginator.Total != 2 || o.Paginator.Count != 2 {
			t.Errorf("unexpected paginator: %+v", o.Paginator)
		}
	})

	t.Run("page and limit translate into an offset", func(t *testing.T) {
		repo := &fakeAlertRepo{broadcasts: []model.BroadcastRecord{{ID: "broadcast_9"}}, total: 21}
		uc := New(repo, &fakeSMS{maxBatch: 50}, testLogger(), Config{})

		o, err := uc.ListBroadcasts(context.Background(), sc, alert.ListBroadcastsInput{
			PaginateQuery: paginator.PaginateQuery{Page: 3, Limit: 10},
		})
		if err != nil {
			t.Fatalf("ListBroadcasts failed: %v", err)
		}

		if repo.lastListOpt.Limit != 10 || repo.lastListOpt.Offset != 20 {
			t.Errorf("options: got limit=%d offset=%d, want limit=10 offset=20", repo.lastListOpt.Limit, repo.lastListOpt.Offset)
		}
		if o.Paginator.PerPage != 10 || o.Paginator.CurrentPage != 3 {
			t.Errorf("unexpected paginator: %+v", o.Paginator)
		}
	})

	t.Run("storage failure surfaces as log failed", func(t *testing.T) {
		repo := &fakeAlertRepo{listErr: repository.ErrListBroadcastsFailed}
		uc := New(repo, &fakeSMS{maxBatch: 50}, testLogger(), Config{})

		_, err := uc.ListBroadcasts(context.Background(), sc, alert.ListBroadcastsInput{})
		if !errors.Is(err, alert.ErrBroadcastLogFailed) {
			t.Errorf("error: got %v, want ErrBroadcastLogFailed", err)
		}
	})
}
