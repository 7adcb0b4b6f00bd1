package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"rockguard-srv/internal/middleware"
	riskHTTP "rockguard-srv/internal/risk/delivery/http"
	riskRedis "rockguard-srv/internal/risk/repository/redis"
	riskUsecase "rockguard-srv/internal/risk/usecase"
)

func (srv *HTTPServer) setupRiskDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := riskRedis.New(srv.redisClient, srv.l, srv.config.Prediction.HistorySize)

	uc := riskUsecase.New(repo, srv.groqClient, srv.kafkaProducer, srv.l, riskUsecase.Config{
		NarrativeTimeout: time.Duration(srv.config.Prediction.NarrativeTimeout) * time.Second,
		ModelName:        srv.config.Groq.Model,
	})

	handler := riskHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Risk domain registered")
	return nil
}
