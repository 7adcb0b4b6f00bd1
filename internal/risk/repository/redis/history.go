package redis

import (
	"context"
	"encoding/json"

	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk/repository"
)

const historyKey = "rockguard:predictions:recent"

// InsertPrediction - prepend and trim in one pipeline so readers never see a
// partially updated history.
func (r *implRepository) InsertPrediction(ctx context.Context, prediction model.Prediction) error {
	payload, err := json.Marshal(prediction)
	if err != nil {
		r.l.Errorf(ctx, "risk.repository.redis.InsertPrediction: Failed to marshal prediction: %v", err)
		return repository.ErrInsertFailed
	}

	if err := r.client.PushTrim(ctx, historyKey, payload, r.historySize); err != nil {
		r.l.Errorf(ctx, "risk.repository.redis.InsertPrediction: Failed to push prediction: %v", err)
		return repository.ErrInsertFailed
	}

	return nil
}

// ListPredictions - read the retained history, newest first. Entries that fail
// to unmarshal are skipped rather than failing the whole read.
func (r *implRepository) ListPredictions(ctx context.Context) ([]model.Prediction, error) {
	entries, err := r.client.ListRange(ctx, historyKey, 0, r.historySize-1)
	if err != nil {
		r.l.Errorf(ctx, "risk.repository.redis.ListPredictions: Failed to read history: %v", err)
		return nil, repository.ErrListFailed
	}

	predictions := make([]model.Prediction, 0, len(entries))
	for _, entry := range entries {
		var p model.Prediction
		if err := json.Unmarshal([]byte(entry), &p); err != nil {
			r.l.Warnf(ctx, "risk.repository.redis.ListPredictions: Skipping corrupt entry: %v", err)
			continue
		}
		predictions = append(predictions, p)
	}

	return predictions, nil
}
