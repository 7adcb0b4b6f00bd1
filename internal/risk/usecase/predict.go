package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk"
)

const fallbackConfidence = 75

// Predict scores the reading deterministically, then tries to enrich the
// assessment with a generated narrative. The narrative may override the level,
// probability, factors, recommendation, window and confidence; the
// deterministic result always survives as the fallback.
func (uc *implUseCase) Predict(ctx context.Context, sc model.Scope, input risk.PredictInput) (risk.PredictOutput, error) {
	reading := input.Reading
	if strings.TrimSpace(reading.Location) == "" {
		uc.l.Warnf(ctx, "risk.usecase.Predict: missing location in reading")
		return risk.PredictOutput{}, risk.ErrLocationRequired
	}

	score := calculateRiskScore(reading)

	prediction := uc.fallbackPrediction(reading, score)
	if uc.groq != nil {
		if narrative, err := uc.generateNarrative(ctx, reading, score); err != nil {
			uc.l.Warnf(ctx, "risk.usecase.Predict: narrative generation failed, using fallback: %v", err)
		} else {
			prediction = narrative
		}
	}

	prediction.ID = uc.nextID()
	prediction.Location = reading.Location
	prediction.Timestamp = time.Now().UTC().Format(time.RFC3339)
	prediction.SensorData = reading

	if err := uc.repo.InsertPrediction(ctx, prediction); err != nil {
		uc.l.Errorf(ctx, "risk.usecase.Predict: failed to store prediction: %v", err)
		return risk.PredictOutput{}, risk.ErrHistoryUnavailable
	}

	uc.publishPredictionCreated(ctx, prediction)

	return risk.PredictOutput{Prediction: prediction}, nil
}

// ListPredictions returns the retained history, newest first.
func (uc *implUseCase) ListPredictions(ctx context.Context, sc model.Scope) (risk.ListPredictionsOutput, error) {
	predictions, err := uc.repo.ListPredictions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "risk.usecase.ListPredictions: failed to list predictions: %v", err)
		return risk.ListPredictionsOutput{}, risk.ErrHistoryUnavailable
	}

	return risk.ListPredictionsOutput{Predictions: predictions}, nil
}

// fallbackPrediction derives every assessment field from the score alone.
func (uc *implUseCase) fallbackPrediction(reading model.SensorReading, score int) model.Prediction {
	probability := float64(score)
	if probability < 5 {
		probability = 5
	}
	if probability > 95 {
		probability = 95
	}

	return model.Prediction{
		RiskLevel:       riskLevelFor(score),
		Probability:     probability,
		RiskFactors:     riskFactors(reading),
		Recommendations: recommendationFor(score),
		TimeWindow:      timeWindowFor(score),
		Confidence:      fallbackConfidence,
		Source:          model.PredictionSourceFallback,
	}
}

// nextID returns a strictly increasing millisecond-based id. Two predictions
// in the same millisecond still get distinct ids.
func (uc *implUseCase) nextID() string {
	for {
		last := atomic.LoadInt64(&uc.lastID)
		next := time.Now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if atomic.CompareAndSwapInt64(&uc.lastID, last, next) {
			return fmt.Sprintf("pred_%d", next)
		}
	}
}
