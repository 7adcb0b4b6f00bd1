package usecase

import (
	"context"
	"encoding/json"

	"rockguard-srv/internal/model"
)

// publishPredictionCreated emits the prediction to the events topic. Best
// effort: a broker outage must not fail the prediction itself.
func (uc *implUseCase) publishPredictionCreated(ctx context.Context, prediction model.Prediction) {
	if uc.producer == nil {
		return
	}

	value, err := json.Marshal(prediction)
	if err != nil {
		uc.l.Errorf(ctx, "risk.usecase.publishPredictionCreated: failed to marshal prediction: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(prediction.Location), value); err != nil {
		uc.l.Errorf(ctx, "risk.usecase.publishPredictionCreated: failed to publish event: %v", err)
	}
}
