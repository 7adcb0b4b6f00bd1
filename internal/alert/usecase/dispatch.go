package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/sms"
)

var validAlertTypes = map[string]struct{}{
	model.AlertTypeWarning:    {},
	model.AlertTypeEvacuation: {},
	model.AlertTypeInfo:       {},
	model.AlertTypeEmergency:  {},
}

var validPriorities = map[string]struct{}{
	model.PriorityLow:      {},
	model.PriorityMedium:   {},
	model.PriorityHigh:     {},
	model.PriorityCritical: {},
}

// Dispatch resolves targets, fans the message out to the gateway in batches
// and appends one immutable record to the broadcast log. A gateway transport
// error fails the whole dispatch atomically: nothing is recorded.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, input alert.DispatchInput) (alert.DispatchOutput, error) {
	input, err := uc.validateDispatch(ctx, input)
	if err != nil {
		return alert.DispatchOutput{}, err
	}

	roster, err := uc.repo.ListRecipients(ctx, repository.ListRecipientsOptions{Roles: input.TargetRoles})
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.Dispatch: failed to load roster: %v", err)
		return alert.DispatchOutput{}, alert.ErrDirectoryUnavailable
	}

	targets := filterRecipients(roster, matchAll(
		byRole(input.TargetRoles),
		byLocation(input.TargetLocations),
	))
	if len(targets) == 0 {
		uc.l.Warnf(ctx, "alert.usecase.Dispatch: no recipients match filters roles=%v locations=%v", input.TargetRoles, input.TargetLocations)
		return alert.DispatchOutput{}, alert.ErrNoRecipients
	}

	message := fmt.Sprintf("[%s] %s", strings.ToUpper(input.AlertType), input.Message)

	results, success, err := uc.fanOut(ctx, targets, message, input)
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.Dispatch: gateway transport failed: %v", err)
		return alert.DispatchOutput{}, alert.ErrTransportUnavailable
	}

	record := model.BroadcastRecord{
		ID:              uc.nextID(),
		Message:         input.Message,
		AlertType:       input.AlertType,
		Priority:        input.Priority,
		TargetRoles:     input.TargetRoles,
		TargetLocations: input.TargetLocations,
		TargetUsers:     len(targets),
		SentTo:          snapshots(targets),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Success:         success,
		Results:         results,
	}

	if err := uc.repo.InsertBroadcast(ctx, record); err != nil {
		uc.l.Errorf(ctx, "alert.usecase.Dispatch: failed to record broadcast %s: %v", record.ID, err)
		return alert.DispatchOutput{}, alert.ErrBroadcastLogFailed
	}

	uc.l.Infof(ctx, "alert.usecase.Dispatch: broadcast %s sent to %d recipients, success=%v", record.ID, len(targets), success)

	return alert.DispatchOutput{Record: record}, nil
}

// validateDispatch normalizes and validates the request. Alert type defaults
// to warning, priority to medium; unknown values are rejected.
func (uc *implUseCase) validateDispatch(ctx context.Context, input alert.DispatchInput) (alert.DispatchInput, error) {
	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" {
		uc.l.Warnf(ctx, "alert.usecase.Dispatch: empty message")
		return input, alert.ErrMessageRequired
	}

	input.AlertType = strings.ToLower(strings.TrimSpace(input.AlertType))
	if input.AlertType == "" {
		input.AlertType = model.AlertTypeWarning
	}
	if _, ok := validAlertTypes[input.AlertType]; !ok {
		uc.l.Warnf(ctx, "alert.usecase.Dispatch: invalid alert type %q", input.AlertType)
		return input, alert.ErrInvalidAlertType
	}

	input.Priority = strings.ToLower(strings.TrimSpace(input.Priority))
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if _, ok := validPriorities[input.Priority]; !ok {
		uc.l.Warnf(ctx, "alert.usecase.Dispatch: invalid priority %q", input.Priority)
		return input, alert.ErrInvalidPriority
	}

	return input, nil
}

// fanOut sends the message to all targets in gateway-sized batches with
// bounded concurrency, then joins. Per-recipient failures do not flip the
// overall success flag; only an explicit unsuccessful gateway response does.
func (uc *implUseCase) fanOut(ctx context.Context, targets []model.Recipient, message string, input alert.DispatchInput) ([]model.DeliveryResult, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.config.DispatchTimeout)
	defer cancel()

	batches := chunkContacts(targets, uc.sms.MaxBatchSize())
	responses := make([]sms.SendResponse, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.MaxConcurrentBatches)
	for i, batch := range batches {
		g.Go(func() error {
			resp, err := uc.sms.Send(gctx, sms.SendRequest{
				Recipients: batch,
				Message:    message,
				Priority:   input.Priority,
				AlertType:  input.AlertType,
			})
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	success := true
	var results []model.DeliveryResult
	for _, resp := range responses {
		if !resp.Success {
			success = false
		}
		for _, r := range resp.Results {
			results = append(results, model.DeliveryResult{
				Contact:   r.Phone,
				Status:    r.Status,
				MessageID: r.MessageID,
				Timestamp: r.Timestamp,
				Cost:      r.Cost,
			})
		}
	}

	return results, success, nil
}

func chunkContacts(targets []model.Recipient, size int) [][]string {
	contacts := make([]string, 0, len(targets))
	for _, t := range targets {
		contacts = append(contacts, t.Contact)
	}

	if size <= 0 {
		size = sms.DefaultMaxBatchSize
	}

	var batches [][]string
	for start := 0; start < len(contacts); start += size {
		end := start + size
		if end > len(contacts) {
			end = len(contacts)
		}
		batches = append(batches, contacts[start:end])
	}
	return batches
}

func snapshots(targets []model.Recipient) []model.RecipientSnapshot {
	snaps := make([]model.RecipientSnapshot, 0, len(targets))
	for _, t := range targets {
		snaps = append(snaps, model.RecipientSnapshot{
			Name:     t.Name,
			Contact:  t.Contact,
			Role:     t.Role,
			Location: t.Location,
		})
	}
	return snaps
}

// nextID returns a strictly increasing millisecond-based id.
func (uc *implUseCase) nextID() string {
	for {
		last := atomic.LoadInt64(&uc.lastID)
		next := time.Now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if atomic.CompareAndSwapInt64(&uc.lastID, last, next) {
			return fmt.Sprintf("broadcast_%d", next)
		}
	}
}
