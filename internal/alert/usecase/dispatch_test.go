package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"rockguard-srv/internal/alert"
	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/log"
	"rockguard-srv/pkg/sms"
)

type fakeAlertRepo struct {
	roster    []model.Recipient
	rosterErr error

	mu        sync.Mutex
	inserted  []model.BroadcastRecord
	insertErr error

	broadcasts []model.BroadcastRecord
	total      int64
	listErr    error

	lastListOpt repository.ListBroadcastsOptions
}

func (f *fakeAlertRepo) ListRecipients(_ context.Context, opt repository.ListRecipientsOptions) ([]model.Recipient, error) {
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	if len(opt.Roles) == 0 {
		return f.roster, nil
	}
	var matched []model.Recipient
	for _, r := range f.roster {
		for _, role := range opt.Roles {
			if strings.EqualFold(r.Role, role) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched, nil
}

func (f *fakeAlertRepo) UpsertRecipient(_ context.Context, _ model.Recipient) error {
	return nil
}

func (f *fakeAlertRepo) InsertBroadcast(_ context.Context, record model.BroadcastRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, record)
	return nil
}

func (f *fakeAlertRepo) ListBroadcasts(_ context.Context, opt repository.ListBroadcastsOptions) ([]model.BroadcastRecord, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	f.lastListOpt = opt
	return f.broadcasts, f.total, nil
}

type fakeSMS struct {
	maxBatch int
	err      error
	success  bool
	failAll  bool

	mu       sync.Mutex
	requests []sms.SendRequest
}

func (f *fakeSMS) Send(_ context.Context, req sms.SendRequest) (sms.SendResponse, error) {
	if f.err != nil {
		return sms.SendResponse{}, f.err
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	results := make([]sms.DeliveryResult, 0, len(req.Recipients))
	for _, phone := range req.Recipients {
		status := sms.StatusSent
		if f.failAll {
			status = sms.StatusFailed
		}
		results = append(results, sms.DeliveryResult{Phone: phone, Status: status, MessageID: "msg_" + phone})
	}

	return sms.SendResponse{
		Success:   f.success,
		Results:   results,
		TotalSent: len(req.Recipients),
	}, nil
}

func (f *fakeSMS) MaxBatchSize() int { return f.maxBatch }

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

func siteRoster() []model.Recipient {
	return []model.Recipient{
		{ID: "1", Name: "John Miner", Contact: "+1234567890", Role: model.RoleMiner, Location: "Tunnel A - Section 2"},
		{ID: "2", Name: "Sarah Supervisor", Contact: "+1234567891", Role: model.RoleAdmin, Location: "Control Room"},
		{ID: "3", Name: "Mike Worker", Contact: "+1234567892", Role: model.RoleMiner, Location: "Tunnel B"},
		{ID: "4", Name: "Lisa Manager", Contact: "+1234567893", Role: model.RoleAdmin, Location: "Safety Station"},
		{ID: "5", Name: "Tom Operator", Contact: "+1234567894", Role: model.RoleMiner, Location: "Main Shaft"},
	}
}

func TestDispatch(t *testing.T) {
	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}

	t.Run("no filters broadcasts to everyone", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, success: true}
		uc := New(repo, gateway, testLogger(), Config{})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "Weekly drill at noon"})
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}

		if o.Record.TargetUsers != 5 {
			t.Errorf("target users: got %d, want 5", o.Record.TargetUsers)
		}
		if len(o.Record.SentTo) != 5 {
			t.Errorf("sent to: got %d, want 5", len(o.Record.SentTo))
		}
		if !o.Record.Success {
			t.Error("record should be successful")
		}
		if len(repo.inserted) != 1 {
			t.Fatalf("inserted records: got %d, want 1", len(repo.inserted))
		}
	})

	t.Run("defaults and message prefix", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, success: true}
		uc := New(repo, gateway, testLogger(), Config{})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "Check your gear"})
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}

		if o.Record.AlertType != model.AlertTypeWarning {
			t.Errorf("alert type: got %s, want warning", o.Record.AlertType)
		}
		if o.Record.Priority != model.PriorityMedium {
			t.Errorf("priority: got %s, want medium", o.Record.Priority)
		}
		if got := gateway.requests[0].Message; got != "[WARNING] Check your gear" {
			t.Errorf("gateway message: got %q, want %q", got, "[WARNING] Check your gear")
		}
		// The record keeps the operator's original text
		if o.Record.Message != "Check your gear" {
			t.Errorf("record message: got %q", o.Record.Message)
		}
	})

	t.Run("role filter targets only matching roles", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, success: true}
		uc := New(repo, gateway, testLogger(), Config{})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{
			Message:     "Miners report to surface",
			TargetRoles: []string{model.RoleMiner},
		})
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}
		if o.Record.TargetUsers != 3 {
			t.Errorf("target users: got %d, want 3", o.Record.TargetUsers)
		}
		for _, snap := range o.Record.SentTo {
			if snap.Role != model.RoleMiner {
				t.Errorf("non-miner targeted: %+v", snap)
			}
		}
	})

	t.Run("location filter is a case-insensitive substring match", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, success: true}
		uc := New(repo, gateway, testLogger(), Config{})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{
			Message:         "Evacuate now",
			AlertType:       model.AlertTypeEvacuation,
			TargetLocations: []string{"tunnel a"},
		})
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}
		if o.Record.TargetUsers != 1 {
			t.Fatalf("target users: got %d, want 1", o.Record.TargetUsers)
		}
		if o.Record.SentTo[0].Location != "Tunnel A - Section 2" {
			t.Errorf("wrong recipient: %+v", o.Record.SentTo[0])
		}
	})

	t.Run("role and location filters combine with AND", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, success: true}
		uc := New(repo, gateway, testLogger(), Config{})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{
			Message:         "Admins near tunnels check in",
			TargetRoles:     []string{model.RoleAdmin},
			TargetLocations: []string{"Tunnel"},
		})
		if !errors.Is(err, alert.ErrNoRecipients) {
			t.Fatalf("error: got %v, want ErrNoRecipients (no admins in tunnels), output %+v", err, o)
		}
	})

	t.Run("transport error is atomic, nothing recorded", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, err: errors.New("connection refused")}
		uc := New(repo, gateway, testLogger(), Config{})

		_, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "test"})
		if !errors.Is(err, alert.ErrTransportUnavailable) {
			t.Fatalf("error: got %v, want ErrTransportUnavailable", err)
		}
		if len(repo.inserted) != 0 {
			t.Errorf("inserted records: got %d, want 0", len(repo.inserted))
		}
	})

	t.Run("unsuccessful gateway response still records, as failure", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 50, success: false, failAll: true}
		uc := New(repo, gateway, testLogger(), Config{})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "test"})
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}
		if o.Record.Success {
			t.Error("record should not be successful")
		}
		if len(repo.inserted) != 1 {
			t.Errorf("inserted records: got %d, want 1", len(repo.inserted))
		}
		for _, r := range o.Record.Results {
			if r.Status != "failed" {
				t.Errorf("result status: got %s, want failed", r.Status)
			}
		}
	})

	t.Run("fan-out chunks recipients into gateway batches", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster()}
		gateway := &fakeSMS{maxBatch: 2, success: true}
		uc := New(repo, gateway, testLogger(), Config{MaxConcurrentBatches: 2})

		o, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "batch test"})
		if err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}
		if len(gateway.requests) != 3 {
			t.Errorf("gateway calls: got %d, want 3", len(gateway.requests))
		}
		if len(o.Record.Results) != 5 {
			t.Errorf("aggregated results: got %d, want 5", len(o.Record.Results))
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := New(&fakeAlertRepo{roster: siteRoster()}, &fakeSMS{maxBatch: 50, success: true}, testLogger(), Config{})

		cases := []struct {
			name  string
			input alert.DispatchInput
			want  error
		}{
			{"empty message", alert.DispatchInput{Message: "  "}, alert.ErrMessageRequired},
			{"unknown alert type", alert.DispatchInput{Message: "x", AlertType: "tsunami"}, alert.ErrInvalidAlertType},
			{"unknown priority", alert.DispatchInput{Message: "x", Priority: "urgent"}, alert.ErrInvalidPriority},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Dispatch(context.Background(), sc, tc.input)
				if !errors.Is(err, tc.want) {
					t.Errorf("error: got %v, want %v", err, tc.want)
				}
			})
		}
	})

	t.Run("directory failure surfaces as unavailable", func(t *testing.T) {
		repo := &fakeAlertRepo{rosterErr: repository.ErrListRecipientsFailed}
		uc := New(repo, &fakeSMS{maxBatch: 50, success: true}, testLogger(), Config{})

		_, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "test"})
		if !errors.Is(err, alert.ErrDirectoryUnavailable) {
			t.Errorf("error: got %v, want ErrDirectoryUnavailable", err)
		}
	})

	t.Run("log failure surfaces after send", func(t *testing.T) {
		repo := &fakeAlertRepo{roster: siteRoster(), insertErr: repository.ErrInsertBroadcastFailed}
		uc := New(repo, &fakeSMS{maxBatch: 50, success: true}, testLogger(), Config{})

		_, err := uc.Dispatch(context.Background(), sc, alert.DispatchInput{Message: "test"})
		if !errors.Is(err, alert.ErrBroadcastLogFailed) {
			t.Errorf("error: got %v, want ErrBroadcastLogFailed", err)
		}
	})
}

func TestChunkContacts(t *testing.T) {
	roster := siteRoster()

	t.Run("exact division", func(t *testing.T) {
		batches := chunkContacts(roster[:4], 2)
		if len(batches) != 2 || len(batches[0]) != 2 || len(batches[1]) != 2 {
			t.Errorf("unexpected batches: %v", batches)
		}
	})

	t.Run("remainder batch", func(t *testing.T) {
		batches := chunkContacts(roster, 2)
		if len(batches) != 3 || len(batches[2]) != 1 {
			t.Errorf("unexpected batches: %v", batches)
		}
	})

	t.Run("single batch when size exceeds roster", func(t *testing.T) {
		batches := chunkContacts(roster, 100)
		if len(batches) != 1 || len(batches[0]) != 5 {
			t.Errorf("unexpected batches: %v", batches)
		}
	})
}
