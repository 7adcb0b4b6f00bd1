package http

import (
	"rockguard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a risk prediction
// @Description Score a sensor reading and produce a risk assessment
// @Tags Risk
// @Accept json
// @Produce json
// @Param body body generatePredictionReq true "Sensor reading"
// @Success 200 {object} predictionResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/predictions/generate [post]
func (h *handler) GeneratePrediction(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGeneratePredictionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.GeneratePrediction: processGeneratePredictionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Predict(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.GeneratePrediction: usecase Predict failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPredictionResp(o))
}

// @Summary List recent predictions
// @Description Return the retained prediction history, newest first
// @Tags Risk
// @Accept json
// @Produce json
// @Success 200 {object} listPredictionsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/predictions [get]
func (h *handler) ListPredictions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processListPredictionsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.ListPredictions: processListPredictionsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListPredictions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.ListPredictions: usecase ListPredictions failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPredictionsResp(o))
}

// @Summary Ask the safety assistant
// @Description Answer a free-text mine safety question
// @Tags Risk
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Question"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/assistant/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "risk.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}
