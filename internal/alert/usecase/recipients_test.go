package usecase

import (
	"context"
	"errors"
	"testing"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
)

func TestListRecipients(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("returns the full roster", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		uc := New(repo, &fakeSMS{maxBatch: 50}, testLogger(), Config{})

		o, err := uc.ListRecipients(context.Background(), sc)
		if err != nil {
			t.Fatalf("ListRecipients failed: %v", err)
		}
		if len(o.Recipients) != 5 {
			t.Errorf("roster size: got %d, want 5", len(o.Recipients))
		}
	})

	t.Run("directory failure surfaces as unavailable", func(t *testing.T) {
		repo := &fakeAlertRepo{rosterErr: repository.ErrListRecipientsFailed}
		uc := New(repo, &fakeSMS{maxBatch: 50}, testLogger(), Config{})

		_, err := uc.ListRecipients(context.Background(), sc)
		if !errors.Is(err, alert.ErrDirectoryUnavailable) {
			t.Errorf("error: got %v, want ErrDirectoryUnavailable", err)
		}
	})
}
