package risk

import (
	"context"

	"rockguard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Predict(ctx context.Context, sc model.Scope, input PredictInput) (PredictOutput, error)
	ListPredictions(ctx context.Context, sc model.Scope) (ListPredictionsOutput, error)
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
}
