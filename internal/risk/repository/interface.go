package repository

import (
	"context"

	"rockguard-srv/internal/model"
)

//go:generate mockery --name PredictionRepository
type PredictionRepository interface {
	// InsertPrediction prepends the prediction to the bounded newest-first
	// history, atomically.
	InsertPrediction(ctx context.Context, prediction model.Prediction) error
	// ListPredictions returns the retained history, newest first.
	ListPredictions(ctx context.Context) ([]model.Prediction, error)
}
