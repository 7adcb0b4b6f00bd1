package usecase

import (
	"context"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
)

// ListRecipients returns the full roster.
func (uc *implUseCase) ListRecipients(ctx context.Context, sc model.Scope) (alert.ListRecipientsOutput, error) {
	recipients, err := uc.repo.ListRecipients(ctx, repository.ListRecipientsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.ListRecipients: failed to load roster: %v", err)
		return alert.ListRecipientsOutput{}, alert.ErrDirectoryUnavailable
	}

	return alert.ListRecipientsOutput{Recipients: recipients}, nil
}
