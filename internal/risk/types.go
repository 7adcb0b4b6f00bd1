package risk

import "rockguard-srv/internal/model"

type PredictInput struct {
	Reading model.SensorReading
}

type PredictOutput struct {
	Prediction model.Prediction
}

type ListPredictionsOutput struct {
	Predictions []model.Prediction
}

type AnalyzeInput struct {
	Query   string
	Context string
}

type AnalyzeOutput struct {
	Response  string
	Timestamp string
	Model     string
}
