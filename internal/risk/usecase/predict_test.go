package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk"
	"rockguard-srv/internal/risk/repository"
	"rockguard-srv/pkg/log"
)

type fakePredictionRepo struct {
	inserted  []model.Prediction
	insertErr error
	items     []model.Prediction
	listErr   error
}

func (f *fakePredictionRepo) InsertPrediction(_ context.Context, prediction model.Prediction) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append([]model.Prediction{prediction}, f.inserted...)
	return nil
}

func (f *fakePredictionRepo) ListPredictions(_ context.Context) ([]model.Prediction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

type fakeGroq struct {
	resp string
	err  error
}

func (f *fakeGroq) Generate(_ context.Context, _ string) (string, error) {
	return f.resp, f.err
}

type fakeProducer struct {
	published int
	err       error
}

func (f *fakeProducer) Publish(_, _ []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published++
	return nil
}
func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
}

// severeReading scores 93: vibration 20, moisture 15, seismic 20, stability
// 15, rainfall 8, groundwater 10, slope 5.
func severeReading() model.SensorReading {
	return model.SensorReading{
		Location:         "Tunnel B",
		Vibration:        6,
		Moisture:         80,
		SeismicActivity:  7,
		RockStability:    4,
		Rainfall:         20,
		GroundwaterLevel: 3,
		SlopeAngle:       50,
	}
}

func TestPredict(t *testing.T) {
	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}

	t.Run("fallback prediction without generator", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		uc := New(repo, nil, nil, testLogger(), Config{})

		o, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: severeReading()})
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}

		p := o.Prediction
		if p.RiskLevel != model.RiskLevelCritical {
			t.Errorf("risk level: got %s, want %s", p.RiskLevel, model.RiskLevelCritical)
		}
		if p.Probability != 93 {
			t.Errorf("probability: got %.0f, want 93", p.Probability)
		}
		if p.Confidence != fallbackConfidence {
			t.Errorf("confidence: got %.0f, want %d", p.Confidence, fallbackConfidence)
		}
		if p.Source != model.PredictionSourceFallback {
			t.Errorf("source: got %s, want fallback", p.Source)
		}
		if !strings.HasPrefix(p.Recommendations, "IMMEDIATE EVACUATION required") {
			t.Errorf("unexpected recommendation: %s", p.Recommendations)
		}
		if p.Location != "Tunnel B" {
			t.Errorf("location: got %s, want Tunnel B", p.Location)
		}
		if len(repo.inserted) != 1 {
			t.Fatalf("inserted count: got %d, want 1", len(repo.inserted))
		}
	})

	t.Run("fallback probability stays within 5 and 95", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		uc := New(repo, nil, nil, testLogger(), Config{})

		o, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: calmReading()})
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if o.Prediction.Probability != 5 {
			t.Errorf("calm probability: got %.0f, want 5", o.Prediction.Probability)
		}
	})

	t.Run("narrative overrides fallback when valid", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		groqClient := &fakeGroq{resp: "```json\n{\"riskLevel\": \"high\", \"probability\": 62, \"riskFactors\": [\"Vibration trending up\"], \"recommendations\": \"Reduce crew size\", \"timeWindow\": \"Short-term risk (2-6 hours)\", \"confidence\": 81}\n```"}
		uc := New(repo, groqClient, nil, testLogger(), Config{ModelName: "test-model"})

		o, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: severeReading()})
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}

		p := o.Prediction
		if p.Source != model.PredictionSourceNarrative {
			t.Errorf("source: got %s, want narrative", p.Source)
		}
		if p.RiskLevel != model.RiskLevelHigh {
			t.Errorf("risk level: got %s, want High (normalized)", p.RiskLevel)
		}
		if p.Probability != 62 || p.Confidence != 81 {
			t.Errorf("probability/confidence: got %.0f/%.0f, want 62/81", p.Probability, p.Confidence)
		}
		if p.Model != "test-model" {
			t.Errorf("model: got %s, want test-model", p.Model)
		}
	})

	t.Run("malformed narrative falls back", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		groqClient := &fakeGroq{resp: "I cannot provide a JSON response right now."}
		uc := New(repo, groqClient, nil, testLogger(), Config{})

		o, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: severeReading()})
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if o.Prediction.Source != model.PredictionSourceFallback {
			t.Errorf("source: got %s, want fallback", o.Prediction.Source)
		}
	})

	t.Run("generator error falls back", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		groqClient := &fakeGroq{err: errors.New("gateway timeout")}
		uc := New(repo, groqClient, nil, testLogger(), Config{})

		o, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: severeReading()})
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if o.Prediction.Source != model.PredictionSourceFallback {
			t.Errorf("source: got %s, want fallback", o.Prediction.Source)
		}
	})

	t.Run("missing location is rejected", func(t *testing.T) {
		uc := New(&fakePredictionRepo{}, nil, nil, testLogger(), Config{})

		_, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: model.SensorReading{}})
		if !errors.Is(err, risk.ErrLocationRequired) {
			t.Errorf("error: got %v, want ErrLocationRequired", err)
		}
	})

	t.Run("storage failure surfaces as history unavailable", func(t *testing.T) {
		repo := &fakePredictionRepo{insertErr: repository.ErrInsertFailed}
		uc := New(repo, nil, nil, testLogger(), Config{})

		_, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: severeReading()})
		if !errors.Is(err, risk.ErrHistoryUnavailable) {
			t.Errorf("error: got %v, want ErrHistoryUnavailable", err)
		}
	})

	t.Run("ids are unique and increasing", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		uc := New(repo, nil, nil, testLogger(), Config{})

		seen := map[string]bool{}
		for range 10 {
			o, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: calmReading()})
			if err != nil {
				t.Fatalf("Predict failed: %v", err)
			}
			if seen[o.Prediction.ID] {
				t.Fatalf("duplicate id %s", o.Prediction.ID)
			}
			seen[o.Prediction.ID] = true
		}
	})

	t.Run("event is published on success", func(t *testing.T) {
		producer := &fakeProducer{}
		uc := New(&fakePredictionRepo{}, nil, producer, testLogger(), Config{})

		if _, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: calmReading()}); err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if producer.published != 1 {
			t.Errorf("published count: got %d, want 1", producer.published)
		}
	})

	t.Run("publish failure does not fail the prediction", func(t *testing.T) {
		producer := &fakeProducer{err: errors.New("broker down")}
		repo := &fakePredictionRepo{}
		uc := New(repo, nil, producer, testLogger(), Config{})

		if _, err := uc.Predict(context.Background(), sc, risk.PredictInput{Reading: calmReading()}); err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if len(repo.inserted) != 1 {
			t.Errorf("inserted count: got %d, want 1", len(repo.inserted))
		}
	})
}

func TestListPredictions(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("returns history newest first", func(t *testing.T) {
		repo := &fakePredictionRepo{items: []model.Prediction{
			{ID: "pred_3"}, {ID: "pred_2"}, {ID: "pred_1"},
		}}
		uc := New(repo, nil, nil, testLogger(), Config{})

		o, err := uc.ListPredictions(context.Background(), sc)
		if err != nil {
			t.Fatalf("ListPredictions failed: %v", err)
		}
		if len(o.Predictions) != 3 || o.Predictions[0].ID != "pred_3" {
			t.Errorf("unexpected history: %+v", o.Predictions)
		}
	})

	t.Run("storage failure surfaces as history unavailable", func(t *testing.T) {
		repo := &fakePredictionRepo{listErr: repository.ErrListFailed}
		uc := New(repo, nil, nil, testLogger(), Config{})

		_, err := uc.ListPredictions(context.Background(), sc)
		if !errors.Is(err, risk.ErrHistoryUnavailable) {
			t.Errorf("error: got %v, want ErrHistoryUnavailable", err)
		}
	})
}
