package http

import (
	"rockguard-srv/internal/model"
	"rockguard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGeneratePredictionRequest(c *gin.Context) (generatePredictionReq, model.Scope, error) {
	var req generatePredictionReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListPredictionsRequest(c *gin.Context) (model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return sc, nil
}

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, model.Scope, error) {
	var req analyzeReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
