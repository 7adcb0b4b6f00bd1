package http

import (
	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk"
)

type generatePredictionReq struct {
	Location          string  `json:"location" binding:"required"`
	Vibration         float64 `json:"vibration"`
	Moisture          float64 `json:"moisture"`
	Temperature       float64 `json:"temperature"`
	Pressure          float64 `json:"pressure"`
	Rainfall          float64 `json:"rainfall"`
	WindSpeed         float64 `json:"windSpeed"`
	SeismicActivity   float64 `json:"seismicActivity"`
	RockStability     float64 `json:"rockStability"`
	SlopeAngle        float64 `json:"slopeAngle"`
	GroundwaterLevel  float64 `json:"groundwaterLevel"`
	WeatherSeverity   float64 `json:"weatherSeverity"`
	WeatherConditions string  `json:"weatherConditions"`
}

func (r generatePredictionReq) toInput() risk.PredictInput {
	return risk.PredictInput{
		Reading: model.SensorReading{
			Location:          r.Location,
			Vibration:         r.Vibration,
			Moisture:          r.Moisture,
			Temperature:       r.Temperature,
			Pressure:          r.Pressure,
			Rainfall:          r.Rainfall,
			WindSpeed:         r.WindSpeed,
			SeismicActivity:   r.SeismicActivity,
			RockStability:     r.RockStability,
			SlopeAngle:        r.SlopeAngle,
			GroundwaterLevel:  r.GroundwaterLevel,
			WeatherSeverity:   r.WeatherSeverity,
			WeatherConditions: r.WeatherConditions,
		},
	}
}

type analyzeReq struct {
	Query   string `json:"query" binding:"required"`
	Context string `json:"context,omitempty"`
}

func (r analyzeReq) toInput() risk.AnalyzeInput {
	return risk.AnalyzeInput{
		Query:   r.Query,
		Context: r.Context,
	}
}

type predictionResp struct {
	Prediction model.Prediction `json:"prediction"`
}

func (h *handler) newPredictionResp(o risk.PredictOutput) predictionResp {
	return predictionResp{Prediction: o.Prediction}
}

type listPredictionsResp struct {
	Predictions []model.Prediction `json:"predictions"`
	Count       int                `json:"count"`
}

func (h *handler) newListPredictionsResp(o risk.ListPredictionsOutput) listPredictionsResp {
	predictions := o.Predictions
	if predictions == nil {
		predictions = []model.Prediction{}
	}
	return listPredictionsResp{Predictions: predictions, Count: len(predictions)}
}

type analyzeResp struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"aiModel"`
}

func (h *handler) newAnalyzeResp(o risk.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Response:  o.Response,
		Timestamp: o.Timestamp,
		Model:     o.Model,
	}
}
