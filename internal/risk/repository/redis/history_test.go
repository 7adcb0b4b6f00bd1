package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk/repository"
	"rockguard-srv/pkg/log"
)

// fakeRedis keeps one newest-first list in memory, mirroring PushTrim and
// ListRange semantics.
type fakeRedis struct {
	entries []string
	pushErr error
	listErr error
}

func (f *fakeRedis) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (f *fakeRedis) Get(context.Context, string) (string, error)                   { return "", nil }
func (f *fakeRedis) Delete(context.Context, ...string) error                       { return nil }
func (f *fakeRedis) Exists(context.Context, string) (bool, error)                  { return false, nil }
func (f *fakeRedis) TTL(context.Context, string) (time.Duration, error)            { return 0, nil }
func (f *fakeRedis) Close() error                                                  { return nil }
func (f *fakeRedis) Ping(context.Context) error                                    { return nil }
func (f *fakeRedis) GetClient() *goredis.Client                                    { return nil }

func (f *fakeRedis) PushTrim(_ context.Context, _ string, value interface{}, maxLen int64) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.entries = append([]string{string(value.([]byte))}, f.entries...)
	if int64(len(f.entries)) > maxLen {
		f.entries = f.entries[:maxLen]
	}
	return nil
}

func (f *fakeRedis) ListRange(_ context.Context, _ string, start, stop int64) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if start >= int64(len(f.entries)) {
		return nil, nil
	}
	if stop >= int64(len(f.entries)) {
		stop = int64(len(f.entries)) - 1
	}
	return f.entries[start : stop+1], nil
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

func TestInsertPrediction(t *testing.T) {
	t.Run("history is trimmed to the configured size", func(t *testing.T) {
		client := &fakeRedis{}
		repo := New(client, testLogger(), 5)

		for i := 0; i < 7; i++ {
			p := model.Prediction{ID: string(rune('a' + i))}
			if err := repo.InsertPrediction(context.Background(), p); err != nil {
				t.Fatalf("InsertPrediction failed: %v", err)
			}
		}

		if len(client.entries) != 5 {
			t.Fatalf("retained entries: got %d, want 5", len(client.entries))
		}

		var newest model.Prediction
		if err := json.Unmarshal([]byte(client.entries[0]), &newest); err != nil {
			t.Fatalf("unmarshal newest entry: %v", err)
		}
		if newest.ID != "g" {
			t.Errorf("newest id: got %s, want g", newest.ID)
		}
	})

	t.Run("push failure maps to insert failed", func(t *testing.T) {
		client := &fakeRedis{pushErr: errors.New("connection reset")}
		repo := New(client, testLogger(), 5)

		err := repo.InsertPrediction(context.Background(), model.Prediction{ID: "pred_1"})
		if !errors.Is(err, repository.ErrInsertFailed) {
			t.Errorf("error: got %v, want ErrInsertFailed", err)
		}
	})
}

func TestListPredictions(t *testing.T) {
	t.Run("returns entries newest first", func(t *testing.T) {
		client := &fakeRedis{}
		repo := New(client, testLogger(), 5)

		for _, id := range []string{"pred_1", "pred_2", "pred_3"} {
			if err := repo.InsertPrediction(context.Background(), model.Prediction{ID: id}); err != nil {
				t.Fatalf("InsertPrediction failed: %v", err)
			}
		}

		got, err := repo.ListPredictions(context.Background())
		if err != nil {
			t.Fatalf("ListPredictions failed: %v", err)
		}
		if len(got) != 3 || got[0].ID != "pred_3" || got[2].ID != "pred_1" {
			t.Errorf("unexpected history: %+v", got)
		}
	})

	t.Run("corrupt entries are skipped", func(t *testing.T) {
		client := &fakeRedis{entries: []string{`{"id":"pred_2"}`, "not json", `{"id":"pred_1"}`}}
		repo := New(client, testLogger(), 5)

		got, err := repo.ListPredictions(context.Background())
		if err != nil {
			t.Fatalf("ListPredictions failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "pred_2" || got[1].ID != "pred_1" {
			t.Errorf("unexpected history: %+v", got)
		}
	})

	t.Run("read failure maps to list failed", func(t *testing.T) {
		client := &fakeRedis{listErr: errors.New("connection reset")}
		repo := New(client, testLogger(), 5)

		_, err := repo.ListPredictions(context.Background())
		if !errors.Is(err, repository.ErrListFailed) {
			t.Errorf("error: got %v, want ErrListFailed", err)
		}
	})
}
